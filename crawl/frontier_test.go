package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/siteqa/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops in FIFO order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		require.True(t, f.Push("https://example.com/a"))
		require.True(t, f.Push("https://example.com/b"))
		require.True(t, f.Push("https://example.com/c"))

		got := make([]string, 0, 3)
		for {
			url, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, url)
		}

		assert.Equal(t, []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}, got)
	})

	t.Run("rejects duplicate pushes", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		assert.True(t, f.Push("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a"))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("remembers popped URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push("https://example.com/a")
		_, ok := f.Pop()
		require.True(t, ok)

		assert.False(t, f.Push("https://example.com/a"))
	})

	t.Run("empty frontier pops nothing", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		_, ok := f.Pop()
		assert.False(t, ok)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(10000, 0.01)
		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					f.Push(fmt.Sprintf("https://example.com/w%d-%d", w, i))
					f.Pop()
				}
			}(w)
		}
		wg.Wait()
	})
}
