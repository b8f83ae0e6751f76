package domain

import "context"

// TextGenerator is the external text-generation collaborator. It is
// untrusted and possibly slow: it may fail outright or return text that does
// not follow the requested layout. One complete string per call, no
// streaming.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
