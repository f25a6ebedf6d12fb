package finerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedResponseError(t *testing.T) {
	err := &MalformedResponseError{Source: "receipt", Reason: "missing amount or merchant"}
	assert.Equal(t, "malformed receipt response: missing amount or merchant", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestMalformedResponseError_Wrapped(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &MalformedResponseError{Source: "statement", Reason: "invalid JSON", Err: cause}

	assert.Contains(t, err.Error(), "malformed statement response: invalid JSON")
	assert.Contains(t, err.Error(), cause.Error())
	assert.ErrorIs(t, err, cause)
}

func TestInvalidTransactionError(t *testing.T) {
	err := &InvalidTransactionError{Description: "Broken entry", Field: "amount", Reason: "missing"}
	assert.Equal(t, `invalid transaction "Broken entry": amount: missing`, err.Error())
}

func TestUnsupportedInputError(t *testing.T) {
	err := &UnsupportedInputError{Reason: "unknown source: invoice"}
	assert.Equal(t, "unsupported input: unknown source: invoice", err.Error())
}
