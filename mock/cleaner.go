package mock

import "github.com/fwojciec/siteqa"

var _ siteqa.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of siteqa.Cleaner.
type Cleaner struct {
	CleanFn func(rawHTML string) string
}

func (c *Cleaner) Clean(rawHTML string) string {
	return c.CleanFn(rawHTML)
}
