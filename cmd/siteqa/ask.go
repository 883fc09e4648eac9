package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	state, err := deps.Indexer.Index(deps.Ctx, c.URL, c.MaxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	result, err := deps.Processor.Answer(deps.Ctx, c.Question, state)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Answer)
	if len(result.CitedURLs) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, url := range result.CitedURLs {
			fmt.Fprintf(deps.Stdout, "  %s\n", url)
		}
	}
	return nil
}
