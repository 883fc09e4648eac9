package siteqa_test

import (
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips fragment",
			in:   "https://example.com/page#section",
			want: "https://example.com/page",
		},
		{
			name: "strips tracking params",
			in:   "https://example.com/page?utm_source=x&utm_medium=y&id=5",
			want: "https://example.com/page?id=5",
		},
		{
			name: "drops empty query after stripping",
			in:   "https://example.com/page?utm_campaign=spring",
			want: "https://example.com/page",
		},
		{
			name: "trims trailing slash",
			in:   "https://example.com/page/",
			want: "https://example.com/page",
		},
		{
			name: "keeps root slash",
			in:   "https://example.com/",
			want: "https://example.com/",
		},
		{
			name: "lowercases host",
			in:   "https://Example.COM/Page",
			want: "https://example.com/Page",
		},
		{
			name: "already normalized",
			in:   "https://example.com/a/b",
			want: "https://example.com/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := siteqa.NormalizeURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_Invalid(t *testing.T) {
	t.Parallel()

	_, err := siteqa.NormalizeURL("/relative/path")

	require.Error(t, err)
	assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
}

func TestSameHost(t *testing.T) {
	t.Parallel()

	assert.True(t, siteqa.SameHost("https://example.com/a", "https://example.com/b"))
	assert.True(t, siteqa.SameHost("https://Example.com/a", "https://example.COM/b"))
	assert.False(t, siteqa.SameHost("https://example.com/a", "https://other.com/a"))
	assert.False(t, siteqa.SameHost("not a url at all", "://"))
}
