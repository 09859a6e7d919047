package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_SurvivesWrapping(t *testing.T) {
	base := NotFound("pet")
	wrapped := fmt.Errorf("get pet: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "pet not found", Message(wrapped))
}

func TestKindOf_PlainErrorIsUnknown(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindUnknown, KindOf(err))
	assert.False(t, IsValidation(err))
	assert.Nil(t, Fields(err))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("fk violation")
	err := Wrap(KindValidation, "Owner not found", cause)

	require.True(t, errors.Is(err, cause))
	assert.Equal(t, "Owner not found", err.Error())
	assert.Equal(t, "validation", KindOf(err).String())
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields("Validation failed", []FieldError{{Field: "email", Error: "is required"}})

	require.True(t, IsValidation(err))
	require.Len(t, Fields(err), 1)
	assert.Equal(t, "email", Fields(err)[0].Field)
}
