package quizgen

import (
	"testing"

	"quizroom/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuild_IsDeterministic(t *testing.T) {
	builder := NewPromptBuilder()

	first := builder.Build("Photosynthesis", domain.DifficultyMedium, 1)
	second := builder.Build("Photosynthesis", domain.DifficultyMedium, 1)

	assert.Equal(t, first, second)
}

func TestBuild_EmbedsInputs(t *testing.T) {
	prompt := NewPromptBuilder().Build("Photosynthesis", domain.DifficultyHard, 3)

	assert.Contains(t, prompt, "Photosynthesis")
	assert.Contains(t, prompt, "Hard")
	assert.Contains(t, prompt, "question 3")
}

func TestBuild_RequestsExpectedLayout(t *testing.T) {
	prompt := NewPromptBuilder().Build("Cell Biology", domain.DifficultyEasy, 1)

	assert.Contains(t, prompt, "Question:")
	assert.Contains(t, prompt, "A)")
	assert.Contains(t, prompt, "B)")
	assert.Contains(t, prompt, "C)")
	assert.Contains(t, prompt, "D)")
	assert.Contains(t, prompt, "Correct Answer:")
	assert.Contains(t, prompt, "Explanation:")
}

func TestBuild_DistinctPerIndex(t *testing.T) {
	builder := NewPromptBuilder()

	assert.NotEqual(t,
		builder.Build("Photosynthesis", domain.DifficultyMedium, 1),
		builder.Build("Photosynthesis", domain.DifficultyMedium, 2))
}
