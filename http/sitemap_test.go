package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	siteqahttp "github.com/fwojciec/siteqa/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("uses robots.txt sitemap directive", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				fmt.Fprintf(w, "User-agent: *\nSitemap: %s/custom-sitemap.xml\n", srv.URL)
			case "/custom-sitemap.xml":
				fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset>
  <url><loc>%s/a</loc></url>
  <url><loc>%s/b</loc></url>
</urlset>`, srv.URL, srv.URL)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		svc := siteqahttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to /sitemap.xml", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, srv.URL)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		svc := siteqahttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("recurses into sitemap index and deduplicates", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				fmt.Fprintf(w, `<sitemapindex>
  <sitemap><loc>%s/sitemap-1.xml</loc></sitemap>
  <sitemap><loc>%s/sitemap-2.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL)
			case "/sitemap-1.xml":
				fmt.Fprintf(w, `<urlset><url><loc>%s/a</loc></url><url><loc>%s/b</loc></url></urlset>`, srv.URL, srv.URL)
			case "/sitemap-2.xml":
				fmt.Fprintf(w, `<urlset><url><loc>%s/b</loc></url><url><loc>%s/c</loc></url></urlset>`, srv.URL, srv.URL)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		svc := siteqahttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}, urls)
	})

	t.Run("no sitemap yields empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		svc := siteqahttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("malformed sitemap XML is skipped", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sitemap.xml" {
				fmt.Fprint(w, "<urlset><url><loc>broken")
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		svc := siteqahttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
