package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorDerivation(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrChild := ErrBase.New("child error")
	assert.Equal(t, "child error", ErrChild.Error())
	assert.ErrorIs(t, ErrChild, ErrBase)

	ErrMsg := ErrChild.Msg("with context")
	assert.Equal(t, "with context", ErrMsg.Error())
	assert.ErrorIs(t, ErrMsg, ErrChild)
	assert.ErrorIs(t, ErrMsg, ErrBase)
}

func TestErrorWrapping(t *testing.T) {
	ErrBase := New("base error")
	ErrChild := ErrBase.New("child error")

	goErr := errors.New("plumbing failed")
	wrapped := ErrChild.Err(goErr)
	assert.Equal(t, "child error", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, goErr)

	other := fmt.Errorf("another failure")
	wrapped = ErrChild.MsgErr("operation failed", goErr, other)
	assert.Equal(t, "operation failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrChild)
	assert.ErrorIs(t, wrapped, goErr)
	assert.ErrorIs(t, wrapped, other)
	assert.Len(t, wrapped.UnwrapAll(), 3)
}

func TestStatusCode(t *testing.T) {
	ErrBase := New("base error").SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, ErrBase.StatusCode())

	// derived errors inherit the ancestor's status code
	ErrChild := ErrBase.New("child error")
	assert.Equal(t, http.StatusBadRequest, ErrChild.StatusCode())

	ErrOther := ErrChild.SetStatusCode(http.StatusBadGateway)
	assert.Equal(t, http.StatusBadGateway, ErrOther.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrChild.StatusCode())
	assert.ErrorIs(t, ErrOther, ErrBase)
}
