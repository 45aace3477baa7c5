package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrValidation, ErrUnrecognizedOption}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found with id", NewNotFoundError("option kind", "fonts"), `option kind "fonts" not found`},
		{"not found without id", NewNotFoundError("palette", ""), "palette not found"},
		{"field validation", NewValidationError("keywords", "too many keywords"), "validation failed for keywords: too many keywords"},
		{"request validation", NewValidationError("", "empty request"), "validation failed: empty request"},
		{"unrecognized option", NewUnrecognizedOptionError("colorScheme", "neon"), `unrecognized colorScheme "neon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		wantNotFound     bool
		wantValidation   bool
		wantUnrecognized bool
	}{
		{name: "not found", err: NewNotFoundError("option kind", "fonts"), wantNotFound: true},
		{name: "validation", err: NewValidationError("industry", "required"), wantValidation: true},
		{name: "unrecognized option is also validation", err: NewUnrecognizedOptionError("industry", "mining"), wantValidation: true, wantUnrecognized: true},
		{name: "wrapped unrecognized option", err: fmt.Errorf("validate: %w", NewUnrecognizedOptionError("style", "gothic")), wantValidation: true, wantUnrecognized: true},
		{name: "plain error", err: errors.New("palette table corrupted")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNotFound, IsNotFound(tt.err))
			assert.Equal(t, tt.wantValidation, IsValidation(tt.err))
			assert.Equal(t, tt.wantUnrecognized, IsUnrecognizedOption(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", NewUnrecognizedOptionError("logoStyle", "hologram"))

	var optionErr *UnrecognizedOptionError
	require.ErrorAs(t, wrapped, &optionErr)
	assert.Equal(t, "logoStyle", optionErr.Option)
	assert.Equal(t, "hologram", optionErr.Value)

	var validationErr *ValidationError
	require.ErrorAs(t, fmt.Errorf("check: %w", NewValidationError("keywords", "too many")), &validationErr)
	assert.Equal(t, "keywords", validationErr.Field)

	var notFound *NotFoundError
	require.ErrorAs(t, fmt.Errorf("options: %w", NewNotFoundError("option kind", "sizes")), &notFound)
	assert.Equal(t, "sizes", notFound.ID)
}
