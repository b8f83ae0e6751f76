package domain

import "context"

// RecordKind tags the payload handed to the persistence side-channel.
type RecordKind string

const (
	RecordKindQuiz       RecordKind = "quiz"
	RecordKindSubmission RecordKind = "submission"
)

// Notifier is the fire-and-forget persistence collaborator. A failed
// notification must never propagate to or abort the caller's operation.
type Notifier interface {
	Notify(ctx context.Context, kind RecordKind, recordID string, payload interface{}) error
}
