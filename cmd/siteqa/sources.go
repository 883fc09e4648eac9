package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	state, err := deps.Indexer.Index(deps.Ctx, c.URL, c.MaxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	infos := state.SourceInfos()

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(deps.Stdout, "%d pages indexed from %s\n\n", len(infos), c.URL)
	for _, info := range infos {
		fmt.Fprintf(deps.Stdout, "%s\n    %s\n", info.URL, info.Synopsis)
	}
	return nil
}
