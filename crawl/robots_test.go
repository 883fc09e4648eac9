package crawl_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/siteqa/crawl"
	"github.com/stretchr/testify/assert"
)

func TestRobots_Allowed(t *testing.T) {
	t.Parallel()

	t.Run("honors disallow rules", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/robots.txt" {
				fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		robots := crawl.NewRobots(nil)

		assert.True(t, robots.Allowed(context.Background(), srv.URL+"/public/page"))
		assert.False(t, robots.Allowed(context.Background(), srv.URL+"/private/page"))
	})

	t.Run("missing robots.txt allows everything", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		robots := crawl.NewRobots(nil)

		assert.True(t, robots.Allowed(context.Background(), srv.URL+"/anything"))
	})

	t.Run("fetches robots.txt once per host", func(t *testing.T) {
		t.Parallel()

		var robotsFetches atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/robots.txt" {
				robotsFetches.Add(1)
				fmt.Fprint(w, "User-agent: *\nDisallow:\n")
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		robots := crawl.NewRobots(nil)
		for i := 0; i < 5; i++ {
			robots.Allowed(context.Background(), fmt.Sprintf("%s/page-%d", srv.URL, i))
		}

		assert.Equal(t, int64(1), robotsFetches.Load())
	})

	t.Run("unparsable URL is allowed through", func(t *testing.T) {
		t.Parallel()

		robots := crawl.NewRobots(nil)
		assert.True(t, robots.Allowed(context.Background(), "not-a-url"))
	})
}
