package siteqa

// Page represents a crawled web page before cleaning. Pages are consumed by
// the indexing pipeline and not retained after their text has been extracted.
type Page struct {
	URL  string
	HTML string
}

// PageSummary is the structured summary of a single indexed page, produced
// once during indexing and immutable afterward.
type PageSummary struct {
	URL                string   `json:"url"`
	Topics             []string `json:"topics"`
	KeyPoints          []string `json:"keyPoints"`
	CandidateQuestions []string `json:"candidateQuestions"`
	Synopsis           string   `json:"synopsis"`
}

// Validate returns an error if the summary is missing required fields.
func (s *PageSummary) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	if len(s.Topics) == 0 {
		return Errorf(EINVALID, "summary topics required")
	}
	if s.Synopsis == "" {
		return Errorf(EINVALID, "summary synopsis required")
	}
	return nil
}
