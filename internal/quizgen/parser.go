package quizgen

import (
	"fmt"
	"strings"

	"quizroom/internal/domain"
	"quizroom/internal/logger"

	"go.uber.org/zap"
)

const (
	questionLabel      = "Question:"
	correctAnswerLabel = "Correct Answer:"
	explanationLabel   = "Explanation:"
)

// Result carries a parsed question together with an explicit degraded
// marker, so callers and tests can tell a cleanly parsed question from one
// that was patched up or fully synthesized.
type Result struct {
	Question domain.Question
	Degraded bool
}

// QuestionParser turns one block of free-form generated text into a
// validated question. It never fails: unrecognized or missing sections are
// filled with synthesized placeholders, and a panic while scanning degrades
// to the full fallback question. The upstream generator is untrusted
// free-text and must never be able to abort quiz creation.
type QuestionParser struct{}

func NewQuestionParser() *QuestionParser {
	return &QuestionParser{}
}

// Parse scans raw line by line. Recognition is order-independent and
// case-sensitive on labels: "Question:" starts the stem, "A)".."D)" start
// options, "Correct Answer:" and "Explanation:" start their sections.
func (p *QuestionParser) Parse(raw string, questionID int) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Warn("Question parsing panicked, substituting fallback question",
				zap.Any("panic", r),
				zap.Int("question_id", questionID))
			result = Result{Question: domain.FallbackQuestion(questionID), Degraded: true}
		}
	}()

	var (
		text         string
		correctLabel string
		explanation  string
	)
	options := make(map[string]string, len(domain.OptionLabels))

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, questionLabel):
			text = strings.TrimSpace(strings.TrimPrefix(line, questionLabel))
		case isOptionLine(line):
			label := line[:1]
			options[label] = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, correctAnswerLabel):
			correctLabel = normalizeLabel(strings.TrimPrefix(line, correctAnswerLabel))
		case strings.HasPrefix(line, explanationLabel):
			explanation = strings.TrimSpace(strings.TrimPrefix(line, explanationLabel))
		}
	}

	degraded := false

	if text == "" {
		text = fmt.Sprintf("Question %d could not be generated for this topic.", questionID)
		degraded = true
	}
	for _, label := range domain.OptionLabels {
		if _, ok := options[label]; !ok {
			options[label] = fmt.Sprintf("Option %s (content unavailable)", label)
			degraded = true
		}
	}
	if correctLabel == "" {
		correctLabel = "A"
		degraded = true
	}

	return Result{
		Question: domain.Question{
			ID:           questionID,
			Text:         text,
			Options:      options,
			CorrectLabel: correctLabel,
			Explanation:  explanation,
		},
		Degraded: degraded,
	}
}

// isOptionLine reports whether the line starts with one of "A)".."D)".
func isOptionLine(line string) bool {
	if len(line) < 2 || line[1] != ')' {
		return false
	}
	for _, label := range domain.OptionLabels {
		if line[:1] == label {
			return true
		}
	}
	return false
}

// normalizeLabel extracts a single valid choice label from the correct
// answer section, or "" when none is present.
func normalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	candidate := s[:1]
	for _, label := range domain.OptionLabels {
		if candidate == label {
			return candidate
		}
	}
	return ""
}
