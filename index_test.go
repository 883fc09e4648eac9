package siteqa_test

import (
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFixture(url string) *siteqa.PageSummary {
	return &siteqa.PageSummary{
		URL:                url,
		Topics:             []string{"testing"},
		KeyPoints:          []string{"a key point"},
		CandidateQuestions: []string{"what is this?"},
		Synopsis:           "A page about " + url,
	}
}

func TestNewIndexState(t *testing.T) {
	t.Parallel()

	t.Run("holds matching stores", func(t *testing.T) {
		t.Parallel()

		state, err := siteqa.NewIndexState(
			map[string]*siteqa.PageSummary{
				"https://example.com/b": summaryFixture("https://example.com/b"),
				"https://example.com/a": summaryFixture("https://example.com/a"),
			},
			map[string]string{
				"https://example.com/a": "text a",
				"https://example.com/b": "text b",
			},
		)

		require.NoError(t, err)
		assert.Equal(t, 2, state.Len())
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, state.URLs())

		content, ok := state.Content("https://example.com/a")
		require.True(t, ok)
		assert.Equal(t, "text a", content)

		summary, ok := state.Summary("https://example.com/b")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/b", summary.URL)
	})

	t.Run("rejects mismatched key sets", func(t *testing.T) {
		t.Parallel()

		_, err := siteqa.NewIndexState(
			map[string]*siteqa.PageSummary{
				"https://example.com/a": summaryFixture("https://example.com/a"),
			},
			map[string]string{
				"https://example.com/b": "text b",
			},
		)

		require.Error(t, err)
		assert.Equal(t, siteqa.EINTERNAL, siteqa.ErrorCode(err))
	})

	t.Run("rejects size mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := siteqa.NewIndexState(
			map[string]*siteqa.PageSummary{
				"https://example.com/a": summaryFixture("https://example.com/a"),
			},
			map[string]string{},
		)

		require.Error(t, err)
		assert.Equal(t, siteqa.EINTERNAL, siteqa.ErrorCode(err))
	})
}

func TestIndexState_Summaries_OrderedByURL(t *testing.T) {
	t.Parallel()

	state, err := siteqa.NewIndexState(
		map[string]*siteqa.PageSummary{
			"https://example.com/c": summaryFixture("https://example.com/c"),
			"https://example.com/a": summaryFixture("https://example.com/a"),
			"https://example.com/b": summaryFixture("https://example.com/b"),
		},
		map[string]string{
			"https://example.com/a": "a",
			"https://example.com/b": "b",
			"https://example.com/c": "c",
		},
	)
	require.NoError(t, err)

	summaries := state.Summaries()
	require.Len(t, summaries, 3)
	assert.Equal(t, "https://example.com/a", summaries[0].URL)
	assert.Equal(t, "https://example.com/b", summaries[1].URL)
	assert.Equal(t, "https://example.com/c", summaries[2].URL)
}

func TestIndexState_SourceInfos(t *testing.T) {
	t.Parallel()

	state, err := siteqa.NewIndexState(
		map[string]*siteqa.PageSummary{
			"https://example.com/a": summaryFixture("https://example.com/a"),
		},
		map[string]string{"https://example.com/a": "a"},
	)
	require.NoError(t, err)

	infos := state.SourceInfos()
	require.Len(t, infos, 1)
	assert.Equal(t, "https://example.com/a", infos[0].URL)
	assert.Equal(t, "A page about https://example.com/a", infos[0].Synopsis)
}

func TestPageSummary_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary siteqa.PageSummary
		wantErr string
	}{
		{
			name:    "valid",
			summary: *summaryFixture("https://example.com"),
		},
		{
			name:    "missing URL",
			summary: siteqa.PageSummary{Topics: []string{"t"}, Synopsis: "s"},
			wantErr: "summary URL required",
		},
		{
			name:    "missing topics",
			summary: siteqa.PageSummary{URL: "https://example.com", Synopsis: "s"},
			wantErr: "summary topics required",
		},
		{
			name:    "missing synopsis",
			summary: siteqa.PageSummary{URL: "https://example.com", Topics: []string{"t"}},
			wantErr: "summary synopsis required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.summary.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
			assert.Equal(t, tt.wantErr, siteqa.ErrorMessage(err))
		})
	}
}
