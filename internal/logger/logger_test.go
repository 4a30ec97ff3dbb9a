package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		l := New()
		//nolint:staticcheck
		ctx := context.WithValue(context.Background(), ContextKey, l)
		require.Equal(t, l, FromContext(ctx))
	})

	t.Run("falls back to a new logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
