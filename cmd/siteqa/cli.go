package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/siteqa"
)

// IndexBuilder builds a site index. Satisfied by index.Indexer.
type IndexBuilder interface {
	Index(ctx context.Context, seedURL string, maxPages int) (*siteqa.IndexState, error)
}

// QuestionAnswerer answers a question against a built index. Satisfied by
// query.Processor.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string, state *siteqa.IndexState) (*siteqa.AnswerResult, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Indexer   IndexBuilder
	Processor QuestionAnswerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline progress to stderr"`

	Ask     AskCmd     `cmd:"" help:"Index a site and answer a question about it"`
	Sources SourcesCmd `cmd:"" help:"Index a site and list the pages that were indexed"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Site URL to index"`
	Question string `arg:"" help:"Question to ask about the site"`

	MaxPages        int           `default:"50" help:"Maximum pages to crawl"`
	Concurrency     int           `short:"c" default:"5" help:"Concurrent fetch and summarization limit"`
	MaxContextChars int           `default:"180000" help:"Maximum characters of page text in the answer prompt"`
	Timeout         time.Duration `default:"2m" help:"Time limit for answering the question"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	URL string `arg:"" help:"Site URL to index"`

	MaxPages    int  `default:"50" help:"Maximum pages to crawl"`
	Concurrency int  `short:"c" default:"5" help:"Concurrent fetch and summarization limit"`
	JSON        bool `help:"Emit the source list as JSON"`
}
