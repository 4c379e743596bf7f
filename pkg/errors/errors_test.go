package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "list_not_found",
			code:    errors.ErrListNotFound,
			message: "list file missing",
			wantStr: "[LIST_NOT_FOUND] list file missing",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", "apt")
	assert.Equal(t, `unknown category "apt"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCommandFailed, "brew install git")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrCommandFailed, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[COMMAND_FAILED] brew install git: exit status 1", err.Error())
		assert.ErrorIs(t, err, baseErr)
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrListNotFound, "missing").
		WithDetail("path", "/home/me/lists/uv-tools.txt").
		WithDetail("category", "uv")

	assert.Equal(t, "/home/me/lists/uv-tools.txt", err.Details["path"])
	assert.Equal(t, "uv", err.Details["category"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrListNotFound, "error 1")
	err2 := errors.New(errors.ErrListNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code matches")
	assert.False(t, err1.Is(err3), "different codes do not match")
	assert.True(t, stderrors.Is(fmt.Errorf("outer: %w", err1), err2), "errors.Is walks wrapping")
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"coded", errors.New(errors.ErrCommandNotFound, "brew"), errors.ErrCommandNotFound},
		{"wrapped_coded", fmt.Errorf("ctx: %w", errors.New(errors.ErrListWrite, "x")), errors.ErrListWrite},
		{"plain", stderrors.New("plain"), errors.ErrUnknown},
		{"nil", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetErrorCode(tt.err))
			assert.Equal(t, tt.want != errors.ErrUnknown, errors.IsErrorCode(tt.err, tt.want))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	err := errors.Wrap(stderrors.New("exit status 1"), errors.ErrCommandFailed, "uv tool install ruff: no such tool")
	assert.Equal(t, "uv tool install ruff: no such tool", errors.GetErrorMessage(err))
	assert.Equal(t, "plain", errors.GetErrorMessage(stderrors.New("plain")))
}
