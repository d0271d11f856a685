package errs

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionTypeError(t *testing.T) {
	err := error(&SectionTypeError{Structure: "DataPacketHeader", Offset: 2048, Expected: 1, Actual: 7})

	require.ErrorIs(t, err, ErrSectionType)
	require.NotErrorIs(t, err, ErrFormat)
	require.Contains(t, err.Error(), "DataPacketHeader")
	require.Contains(t, err.Error(), "offset 2048")
	require.Contains(t, err.Error(), "expected tag 1, got 7")

	var ste *SectionTypeError
	require.True(t, errors.As(err, &ste))
	require.Equal(t, uint64(2048), ste.Offset)
}

func TestIOError(t *testing.T) {
	t.Run("With cause", func(t *testing.T) {
		err := error(&IOError{Op: "read chunk", Offset: 100, Want: 16, Got: 3, Err: io.ErrUnexpectedEOF})

		require.ErrorIs(t, err, ErrIO)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Contains(t, err.Error(), "read 3 of 16 bytes")
	})

	t.Run("Without cause", func(t *testing.T) {
		err := error(&IOError{Op: "read header", Want: 48, Got: 10})

		require.ErrorIs(t, err, ErrIO)
		require.NotContains(t, err.Error(), "<nil>")
	})
}
