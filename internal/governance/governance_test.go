package governance

import (
	"fmt"
	"sync"
	"testing"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_NewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}

func Test_Versions(t *testing.T) {
	v := Versions()
	require.Equal(t, MTAVersion, v.MTA)
	require.Equal(t, MMMVersion, v.MMM)
	require.Equal(t, DecisionVersion, v.Decision)
}

func Test_RunHistory(t *testing.T) {
	t.Run("evicts oldest beyond the cap", func(t *testing.T) {
		h := NewRunHistory(3)
		for i := 0; i < 5; i++ {
			h.Append(domain.RunMetadata{RunID: fmt.Sprintf("run-%d", i)})
		}

		entries := h.List()
		require.Len(t, entries, 3)
		require.Equal(t, "run-2", entries[0].RunID)
		require.Equal(t, "run-4", entries[2].RunID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		h := NewRunHistory(3)
		h.Append(domain.RunMetadata{RunID: "run-0"})

		entries := h.List()
		entries[0].RunID = "mutated"
		require.Equal(t, "run-0", h.List()[0].RunID)
	})

	t.Run("non-positive cap takes the default", func(t *testing.T) {
		h := NewRunHistory(0)
		for i := 0; i < DefaultHistoryCap+10; i++ {
			h.Append(domain.RunMetadata{RunID: fmt.Sprintf("run-%d", i)})
		}
		require.Equal(t, DefaultHistoryCap, h.Len())
	})

	t.Run("concurrent appends stay bounded", func(t *testing.T) {
		h := NewRunHistory(10)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				h.Append(domain.RunMetadata{RunID: fmt.Sprintf("run-%d", i)})
			}(i)
		}
		wg.Wait()
		require.Equal(t, 10, h.Len())
	})
}
