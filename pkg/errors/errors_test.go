// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/bannerkit/pkg/errors"
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
			name:    "data_invalid",
			code:    errors.ErrDataInvalid,
			message: "Failed to parse SubModule.xml file",
			wantStr: "[DATA_INVALID] Failed to parse SubModule.xml file",
		},
		{
			name:    "contract",
			code:    errors.ErrContract,
			message: "archive has no Modules folder",
			wantStr: "[CONTRACT] archive has no Modules folder",
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
	err := errors.Newf(errors.ErrNotFound, "installer %q not found", "bannerlordrootmod")
	assert.Equal(t, `installer "bannerlordrootmod" not found`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileAccess, "cannot read")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrFileAccess, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_ACCESS] cannot read: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDataInvalid, "bad identity").
		WithDetail("path", "SubModule.xml")

	assert.Equal(t, "SubModule.xml", err.Details["path"])
	assert.Equal(t, "SubModule.xml", errors.GetErrorDetails(err)["path"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDataInvalid, "error 1")
	err2 := errors.New(errors.ErrDataInvalid, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrDataInvalid, "x"), errors.ErrDataInvalid, true},
		{"different_code", errors.New(errors.ErrDataInvalid, "x"), errors.ErrContract, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDataInvalid, errors.GetErrorCode(errors.New(errors.ErrDataInvalid, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))
	assert.True(t, stderrors.Is(configErr, rootCause))

	var inner *errors.Error
	require.True(t, stderrors.As(configErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrFileAccess, inner.Code)
}

func TestIsErrorCodeSearchesChain(t *testing.T) {
	inner := errors.New(errors.ErrDataInvalid, "Unexpected SubModule.xml format")
	outer := errors.Wrap(inner, errors.ErrInternal, "plan failed")

	assert.True(t, errors.IsErrorCode(outer, errors.ErrDataInvalid))
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(outer), "code comes from the outermost error")
}

func TestDetailKeysAndAs(t *testing.T) {
	err := errors.New(errors.ErrDataInvalid, "x").
		WithDetail("path", "SubModule.xml").
		WithDetail("archive", "ModA")

	kitErr, ok := errors.As(fmt.Errorf("context: %w", err))
	require.True(t, ok)
	assert.Equal(t, []string{"archive", "path"}, kitErr.DetailKeys())

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}
