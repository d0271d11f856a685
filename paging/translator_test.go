package paging

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/arloliu/e57/errs"
	"github.com/stretchr/testify/require"
)

const checksumFill = 0xEE

// paginate lays logical payload out in pages whose checksum bytes are all
// checksumFill, so any checksum byte leaking into a read is visible.
func paginate(t *testing.T, payload []byte, g Geometry) []byte {
	t.Helper()

	var out []byte
	for start := uint64(0); start < uint64(len(payload)); start += g.PageContent {
		end := min(start+g.PageContent, uint64(len(payload)))
		page := make([]byte, g.PageSize)
		copy(page, payload[start:end])
		for i := g.PageContent; i < g.PageSize; i++ {
			page[i] = checksumFill
		}
		out = append(out, page...)
	}

	return out
}

func sequentialPayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	return payload
}

func TestTranslator_ReadAt(t *testing.T) {
	g, err := NewGeometry(1024)
	require.NoError(t, err)

	payload := sequentialPayload(4 * 1020)
	file := paginate(t, payload, g)
	tr := NewTranslator(bytes.NewReader(file), g, uint64(len(file)))

	t.Run("Three page metadata run", func(t *testing.T) {
		data, err := tr.ReadAt(48, 2000)
		require.NoError(t, err)
		require.Len(t, data, 2000)
		require.Equal(t, payload[48:2048], data)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := tr.ReadAt(100, 3000)
		require.NoError(t, err)
		second, err := tr.ReadAt(100, 3000)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("Every offset and length", func(t *testing.T) {
		for logical := uint64(0); logical < 1100; logical += 37 {
			physical := g.LogicalToPhysical(logical)
			for _, length := range []uint64{0, 1, 3, 1019, 1020, 1021, 2500} {
				data, err := tr.ReadAt(physical, length)
				require.NoError(t, err)
				require.Equal(t, payload[logical:logical+length], data, "logical=%d length=%d", logical, length)
			}
		}
	})

	t.Run("Checksum bytes never returned", func(t *testing.T) {
		data, err := tr.ReadAt(0, uint64(len(payload)))
		require.NoError(t, err)
		require.Equal(t, payload, data)
	})

	t.Run("Zero length", func(t *testing.T) {
		data, err := tr.ReadAt(48, 0)
		require.NoError(t, err)
		require.NotNil(t, data)
		require.Empty(t, data)
	})

	t.Run("Offset in checksum", func(t *testing.T) {
		_, err := tr.ReadAt(1021, 4)
		require.ErrorIs(t, err, errs.ErrSize)
	})
}

func TestTranslator_ShortRead(t *testing.T) {
	g, err := NewGeometry(64)
	require.NoError(t, err)

	file := paginate(t, sequentialPayload(120), g) // 2 pages, 128 bytes

	t.Run("Known size rejects before reading", func(t *testing.T) {
		tr := NewTranslator(bytes.NewReader(file), g, uint64(len(file)))

		data, err := tr.ReadAt(0, 200)
		require.Nil(t, data)
		require.ErrorIs(t, err, errs.ErrIO)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Huge length rejected against known size", func(t *testing.T) {
		tr := NewTranslator(bytes.NewReader(file), g, uint64(len(file)))

		for _, length := range []uint64{1 << 40, 1 << 62} {
			data, err := tr.ReadAt(0, length)
			require.Nil(t, data)
			require.ErrorIs(t, err, errs.ErrIO)
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		}
	})

	t.Run("Length overflowing the offset range", func(t *testing.T) {
		tr := NewTranslator(bytes.NewReader(file), g, 0)

		data, err := tr.ReadAt(0, math.MaxUint64)
		require.Nil(t, data)
		require.ErrorIs(t, err, errs.ErrSize)
	})

	t.Run("Unknown size fails on the short chunk", func(t *testing.T) {
		tr := NewTranslator(bytes.NewReader(file), g, 0)

		data, err := tr.ReadAt(0, 200)
		require.Nil(t, data)

		var ioErr *errs.IOError
		require.True(t, errors.As(err, &ioErr))
		require.Equal(t, uint64(128), ioErr.Offset)
		require.Equal(t, uint64(0), ioErr.Got)
	})

	t.Run("Truncated mid chunk", func(t *testing.T) {
		tr := NewTranslator(bytes.NewReader(file[:100]), g, 0)

		_, err := tr.ReadAt(0, 100)

		var ioErr *errs.IOError
		require.True(t, errors.As(err, &ioErr))
		require.Equal(t, uint64(64), ioErr.Offset)
		require.Equal(t, uint64(40), ioErr.Want)
		require.Equal(t, uint64(36), ioErr.Got)
	})
}

type failingReader struct{ err error }

func (f failingReader) ReadAt(p []byte, _ int64) (int, error) {
	return 0, f.err
}

func TestTranslator_ReaderError(t *testing.T) {
	g, err := NewGeometry(64)
	require.NoError(t, err)

	boom := errors.New("disk on fire")
	tr := NewTranslator(failingReader{err: boom}, g, 0)

	_, err = tr.ReadAt(0, 10)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, boom)
}

func TestTranslator_Chunks(t *testing.T) {
	g, err := NewGeometry(1024)
	require.NoError(t, err)

	tr := NewTranslator(bytes.NewReader(nil), g, 0)
	require.Equal(t, g, tr.Geometry())

	chunks, err := tr.Chunks(48, 2000)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	require.Equal(t, uint64(972), chunks[0].Length)
	require.Equal(t, uint64(1020), chunks[1].Length)
	require.Equal(t, uint64(8), chunks[2].Length)
}
