package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("showcase.yaml", "yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "showcase.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "yaml parse error: showcase.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLineOrFormat(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.toml", "", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: missing.toml: permission denied", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("slider.animation", "must be one of [fade slide]", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "slider.animation", validationErr.Field)
	require.Equal(t, "validation error: slider.animation: must be one of [fade slide]", err.Error())
	require.Nil(t, validationErr.Unwrap())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("boom")
	err := NewValidationError("", "config is nil", underlying)
	require.Equal(t, "validation error: config is nil", err.Error())
	require.ErrorIs(t, err, underlying)
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
}
