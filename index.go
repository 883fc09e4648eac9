package siteqa

import "sort"

// IndexState holds the two-tier index produced by a completed indexing run:
// structured summaries and full cleaned text, both keyed by URL. It is
// populated exactly once by its constructor and read-only afterward, so it
// is safe for concurrent readers without locking.
//
// Invariant: the summary and content maps contain exactly the same key set.
// A page that fails any indexing stage appears in neither.
type IndexState struct {
	summaries map[string]*PageSummary
	contents  map[string]string
	urls      []string
}

// NewIndexState constructs a frozen IndexState from the given maps.
// It returns EINTERNAL if the two maps do not share the same key set.
func NewIndexState(summaries map[string]*PageSummary, contents map[string]string) (*IndexState, error) {
	if len(summaries) != len(contents) {
		return nil, Errorf(EINTERNAL, "index stores out of sync: %d summaries, %d contents", len(summaries), len(contents))
	}

	urls := make([]string, 0, len(summaries))
	for url := range summaries {
		if _, ok := contents[url]; !ok {
			return nil, Errorf(EINTERNAL, "index stores out of sync: %q has a summary but no content", url)
		}
		urls = append(urls, url)
	}
	sort.Strings(urls)

	return &IndexState{
		summaries: summaries,
		contents:  contents,
		urls:      urls,
	}, nil
}

// Len returns the number of indexed pages.
func (s *IndexState) Len() int {
	return len(s.urls)
}

// URLs returns the indexed URLs in sorted order.
func (s *IndexState) URLs() []string {
	urls := make([]string, len(s.urls))
	copy(urls, s.urls)
	return urls
}

// Summary returns the summary for a URL.
func (s *IndexState) Summary(url string) (*PageSummary, bool) {
	summary, ok := s.summaries[url]
	return summary, ok
}

// Content returns the full cleaned text for a URL.
func (s *IndexState) Content(url string) (string, bool) {
	content, ok := s.contents[url]
	return content, ok
}

// Summaries returns all page summaries ordered by URL.
func (s *IndexState) Summaries() []*PageSummary {
	summaries := make([]*PageSummary, 0, len(s.urls))
	for _, url := range s.urls {
		summaries = append(summaries, s.summaries[url])
	}
	return summaries
}

// SourceInfo describes one indexed page for the "what is indexed" diagnostic.
type SourceInfo struct {
	URL      string `json:"url"`
	Synopsis string `json:"synopsis"`
}

// SourceInfos returns a read-only view of the indexed pages ordered by URL.
func (s *IndexState) SourceInfos() []SourceInfo {
	infos := make([]SourceInfo, 0, len(s.urls))
	for _, url := range s.urls {
		infos = append(infos, SourceInfo{
			URL:      url,
			Synopsis: s.summaries[url].Synopsis,
		})
	}
	return infos
}
