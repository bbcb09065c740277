package useravatar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendFailure(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("new row violates row-level security policy")
	err := BackendFailure(cause)
	assert.Equal(KindBackend, err.Kind)
	assert.Equal(cause.Error(), err.Message)
	assert.ErrorIs(err, cause)

	wrapped := fmt.Errorf("resolve user: %w", ErrNotAuthenticated)
	assert.Same(ErrNotAuthenticated, BackendFailure(wrapped))
}

func TestErrorIs(t *testing.T) {
	assert := assert.New(t)

	copied := &Error{Kind: KindValidation, Message: "No file provided"}
	assert.ErrorIs(copied, ErrNoFile)
	assert.NotErrorIs(copied, ErrNotAuthenticated)
	assert.Equal("validation", copied.Kind.String())
}
