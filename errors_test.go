package p8z_test

import (
	"errors"
	"testing"

	"github.com/dargueta/p8z"
	"github.com/stretchr/testify/assert"
)

func TestP8zErrorWithMessage(t *testing.T) {
	newErr := p8z.ErrInvalidArguments.WithMessage("asdfqwerty")
	assert.Equal(
		t, "Invalid arguments: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, p8z.ErrInvalidArguments)
	assert.NotErrorIs(t, newErr, p8z.ErrCompressionFailed)
}

func TestP8zErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := p8z.ErrCompressionFailed.Wrap(originalErr)
	expectedMessage := "Compression failed: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, p8z.ErrCompressionFailed, "p8z error not set as parent")
}

func TestP8zErrorWrap__Chained(t *testing.T) {
	originalErr := errors.New("bad byte")
	newErr := p8z.ErrMalformedLiteral.WithMessage("group 3").Wrap(originalErr)

	assert.Equal(t, "Malformed literal: group 3: bad byte", newErr.Error())
	assert.ErrorIs(t, newErr, originalErr)
	assert.ErrorIs(t, newErr, p8z.ErrMalformedLiteral)
	assert.NotErrorIs(t, newErr, p8z.ErrCorruptPayload)
}
