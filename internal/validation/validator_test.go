package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator(20)

	assert.Empty(t, v.ValidateCreateQuizRequest("Photosynthesis", 5, "Medium"))
	assert.Empty(t, v.ValidateCreateQuizRequest("Photosynthesis", 1, ""))

	assert.NotEmpty(t, v.ValidateCreateQuizRequest("", 5, "Medium"))
	assert.NotEmpty(t, v.ValidateCreateQuizRequest("   ", 5, "Medium"))
	assert.NotEmpty(t, v.ValidateCreateQuizRequest("T", 0, "Medium"))
	assert.NotEmpty(t, v.ValidateCreateQuizRequest("T", 21, "Medium"))
	assert.NotEmpty(t, v.ValidateCreateQuizRequest("T", 5, "Impossible"))
	assert.NotEmpty(t, v.ValidateCreateQuizRequest(strings.Repeat("x", 201), 5, "Easy"))
}

func TestValidateQuizID(t *testing.T) {
	v := NewValidator(20)

	assert.Empty(t, v.ValidateQuizID("01HZXW2N3YQK5T8J4R6V9B1CDE"))

	assert.NotEmpty(t, v.ValidateQuizID(""))
	assert.NotEmpty(t, v.ValidateQuizID("short"))
	assert.NotEmpty(t, v.ValidateQuizID("not-a-ulid-not-a-ulid-not!"))
}
