package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_WrapsAndClassifies(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("geocode request", cause)

	assert.Equal(t, "NETWORK: geocode request: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())
	assert.True(t, Is(err, ErrTypeNetwork))
	assert.False(t, Is(err, ErrTypeAuth))
}

func TestTypeOf_ThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("suspend 12: %w", NotFound("listing", nil))
	assert.Equal(t, ErrTypeNotFound, TypeOf(err))
	assert.Equal(t, ErrTypeInternal, TypeOf(errors.New("plain")))
}

func TestAuth_NoCause(t *testing.T) {
	err := Auth("API key is not correct.")
	require.NotNil(t, err)
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "AUTH: API key is not correct.", err.Error())
}
