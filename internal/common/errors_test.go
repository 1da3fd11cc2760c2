package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("Please enter your name.")
	require.EqualError(t, err, "Please enter your name.")
	require.True(t, IsValidation(err))
	require.True(t, IsValidation(fmt.Errorf("sign up: %w", err)))
	require.False(t, IsValidation(ErrInvalidCredentials))
	require.False(t, IsValidation(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrNoSession, ErrInvalidCredentials))
	require.False(t, errors.Is(ErrNotFound, ErrCorruptedSnapshot))
}
