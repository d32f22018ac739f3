package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asError(t *testing.T, err error) *Error {
	t.Helper()

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func TestNewServer(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	gerr := asError(t, NewServer(cause))

	assert.ErrorIs(t, gerr, cause)
	assert.Equal(t, cause.Error(), gerr.Error())
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}

func TestNewBusiness(t *testing.T) {
	gerr := asError(t, NewBusiness("missing scope notification.otp:send", CodeForbidden))

	assert.Equal(t, "missing scope notification.otp:send", gerr.Error())
	assert.Equal(t, http.StatusForbidden, gerr.StatusCode())
	assert.Equal(t, "ERROR_CODE_FORBIDDEN", gerr.Code().String())
	assert.Equal(t, "ERROR_TYPE_BUSINESS", gerr.Type().String())
}

func TestNewInvalidInput(t *testing.T) {
	cause := errors.New(`{"code":"invalid"}`)
	gerr := asError(t, NewInvalidInput(cause))
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
	assert.ErrorIs(t, gerr, cause)

	gerr = asError(t, NewInvalidInput(nil, "code", "Code must be 4-10 digits"))
	assert.Equal(t, map[string]string{"code": "Code must be 4-10 digits"}, gerr.Fields())
	assert.Equal(t, "Validation error", gerr.Error())

	gerr = asError(t, NewInvalidInput(nil, "dangling"))
	assert.Equal(t, CodeInvalidFormat, gerr.Code())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestNewInvalidFormat(t *testing.T) {
	assert.Equal(t, "Invalid request body", NewInvalidFormat().Error())
	assert.Equal(t, "Invalid request body", NewInvalidFormat("").Error())
	assert.Equal(t, "bad json", NewInvalidFormat("bad json").Error())
}

func TestError_Defaults(t *testing.T) {
	assert.Equal(t, "Internal error", (&Error{}).Error())
	assert.Equal(t, "Validation violation", (&Error{errType: TypeValidation}).Error())
	assert.Equal(t, "Logical business not meet with requirement", (&Error{errType: TypeBusiness}).Error())
	assert.Equal(t, http.StatusInternalServerError, (&Error{code: Code(99)}).StatusCode())
	assert.Equal(t, "ERROR_CODE_INTERNAL", Code(99).String())
	assert.Equal(t, "ERROR_TYPE_UNKNOWN", Type(99).String())
	assert.Contains(t, (&Error{code: CodeTimeout, msg: "slow"}).String(), "ERROR_CODE_TIMEOUT")
}
