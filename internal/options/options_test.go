package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	pageSize uint64
	validate bool
	calls    []string
}

var errPageSize = errors.New("page size must exceed checksum size")

func withPageSize(size uint64) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if size <= 4 {
			return errPageSize
		}
		c.pageSize = size
		c.calls = append(c.calls, "pageSize")

		return nil
	})
}

func withValidation(enabled bool) Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.validate = enabled
		c.calls = append(c.calls, "validate")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &readerConfig{}

		err := Apply(cfg, withValidation(true), withPageSize(1024), withValidation(false))
		require.NoError(t, err)
		require.Equal(t, uint64(1024), cfg.pageSize)
		require.False(t, cfg.validate)
		require.Equal(t, []string{"validate", "pageSize", "validate"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &readerConfig{}

		err := Apply(cfg, withValidation(true), withPageSize(4), withPageSize(2048))
		require.ErrorIs(t, err, errPageSize)
		require.True(t, cfg.validate)
		require.Zero(t, cfg.pageSize)
		require.Equal(t, []string{"validate"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &readerConfig{}

		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("nil option skipped", func(t *testing.T) {
		cfg := &readerConfig{}

		require.NoError(t, Apply(cfg, nil, withValidation(true)))
		require.True(t, cfg.validate)
	})
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
