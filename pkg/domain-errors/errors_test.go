package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	t.Run("New carries code and message", func(t *testing.T) {
		err := New(CodeBusy, "operation in progress")
		assert.True(t, Is(err, CodeBusy))
		assert.Equal(t, CodeBusy, CodeOf(err))
		assert.Equal(t, "operation in progress", err.Error())
	})

	t.Run("Wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("sim rejected write")
		err := Wrap(cause, CodeFailed, "fdn insert failed")
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "fdn insert failed: sim rejected write", err.Error())
	})

	t.Run("Wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeFailed, "ignored"))
	})

	t.Run("HasCode walks nested coded errors", func(t *testing.T) {
		inner := New(CodeNotReady, "fdn not read")
		outer := Wrap(fmt.Errorf("context: %w", inner), CodeInternal, "outer")
		assert.True(t, HasCode(outer, CodeNotReady))
		assert.True(t, HasCode(outer, CodeInternal))
		assert.False(t, Is(outer, CodeNotReady))
	})

	t.Run("uncoded errors classify as internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
	})
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBusy:           http.StatusConflict,
		CodeNotImplemented: http.StatusNotImplemented,
		CodeNotReady:       http.StatusPreconditionFailed,
		CodeInvalidFormat:  http.StatusBadRequest,
		CodeFailed:         http.StatusBadGateway,
		CodeInternal:       http.StatusInternalServerError,
		Code("unknown"):    http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), string(code))
	}
}

func TestErrorsIsMatchesCodeAndMessage(t *testing.T) {
	err := Wrap(errors.New("no SIM"), CodeFailed, "read failed")
	assert.ErrorIs(t, err, New(CodeFailed, "read failed"))
	assert.NotErrorIs(t, err, New(CodeFailed, "other"))
	assert.NotErrorIs(t, err, New(CodeBusy, "read failed"))
}
