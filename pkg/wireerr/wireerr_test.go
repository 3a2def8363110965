package wireerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalid(t *testing.T) {
	err := Invalid("bad thing: %d", 42)
	require.Equal(t, InvalidData, err.Kind)
	require.Contains(t, err.Error(), "bad thing: 42")
}

func TestInvalidBytes(t *testing.T) {
	err := InvalidBytes([]byte("abc"), "unexpected token")
	require.Contains(t, err.Error(), "abc")
}

func TestUtf8Err(t *testing.T) {
	err := Utf8Err([]byte{0xff, 0xfe})
	require.Equal(t, Utf8, err.Kind)
	require.Error(t, err.Unwrap())
}

func TestWrapPreservesKind(t *testing.T) {
	cause := Utf8Err([]byte{0xff})
	wrapped := Wrap(cause, "decoding field")
	require.Equal(t, Utf8, wrapped.Kind)
	require.True(t, errors.Is(wrapped, cause))
}

func TestWrapDefaultsToInvalidData(t *testing.T) {
	wrapped := Wrap(errors.New("plain"), "decoding field")
	require.Equal(t, InvalidData, wrapped.Kind)
}
