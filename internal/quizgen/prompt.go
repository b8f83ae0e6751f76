package quizgen

import (
	"fmt"

	"quizroom/internal/domain"
)

// PromptBuilder renders the prompt handed to the text-generation
// collaborator. Pure and deterministic: identical inputs yield an identical
// prompt string, so generation runs are reproducible given a deterministic
// generator.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build produces the prompt for question number index (1-based) of a quiz on
// the given topic. The topic and difficulty are embedded verbatim; the
// parser defends against output that ignores the requested layout.
func (b *PromptBuilder) Build(topic string, difficulty domain.Difficulty, index int) string {
	return fmt.Sprintf(`You are an expert quiz writer. Write multiple-choice question %d of a quiz about "%s" at %s difficulty.

Respond using exactly this layout, one item per line, with no extra commentary:
Question: <the question text>
A) <option text>
B) <option text>
C) <option text>
D) <option text>
Correct Answer: <one letter: A, B, C or D>
Explanation: <one or two sentences explaining the correct answer>`,
		index, topic, difficulty)
}
