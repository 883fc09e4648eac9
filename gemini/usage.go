package gemini

import "sync/atomic"

// Usage is a running token-usage counter shared by the LLM call sites.
// It exists for observability only and is safe for concurrent use.
type Usage struct {
	input  atomic.Int64
	output atomic.Int64
}

// NewUsage creates an empty usage counter.
func NewUsage() *Usage {
	return &Usage{}
}

// Add records one call's reported token usage.
func (u *Usage) Add(input, output int) {
	u.input.Add(int64(input))
	u.output.Add(int64(output))
}

// Totals returns the accumulated input and output token counts.
func (u *Usage) Totals() (input, output int64) {
	return u.input.Load(), u.output.Load()
}
