package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(http.StatusNotFound, "blog not found")

	var respErr *Error
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.Code)
	assert.Equal(t, "blog not found", respErr.Error())
}

func TestError_Is(t *testing.T) {
	sentinel := NewError(http.StatusConflict, "email already exists")

	assert.True(t, errors.Is(sentinel, NewError(http.StatusConflict, "email already exists")))
	assert.False(t, errors.Is(sentinel, NewError(http.StatusConflict, "username already exists")))
	assert.False(t, errors.Is(sentinel, NewError(http.StatusNotFound, "email already exists")))
}

func TestError_WrappedIsFound(t *testing.T) {
	sentinel := NewError(http.StatusForbidden, "admin access required")
	wrapped := fmt.Errorf("user service: %w", sentinel)

	var respErr *Error
	require.True(t, errors.As(wrapped, &respErr))
	assert.Equal(t, http.StatusForbidden, respErr.Code)
}

func TestEnvelope(t *testing.T) {
	ok := Ok("done", map[string]int{"n": 1})
	assert.True(t, ok.Success)
	assert.Equal(t, "done", ok.Message)
	assert.NotNil(t, ok.Data)

	fail := Fail("bad input", "field missing")
	assert.False(t, fail.Success)
	assert.Equal(t, "field missing", fail.Error)
	assert.Nil(t, fail.Data)
}
