package registry

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-strqueue/logger"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()

	opts = append([]Option{WithLogger(logger.NewSlogWithWriter(io.Discard, logger.DebugLevel, false))}, opts...)
	r, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(r.Close)

	return r
}
