package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/crawl"
	"github.com/fwojciec/siteqa/gemini"
	"github.com/fwojciec/siteqa/goquery"
	qahttp "github.com/fwojciec/siteqa/http"
	"github.com/fwojciec/siteqa/index"
	"github.com/fwojciec/siteqa/query"
	"github.com/fwojciec/siteqa/readability"
	qaslog "github.com/fwojciec/siteqa/slog"
	"github.com/fwojciec/siteqa/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// crawlRequestsPerSecond is the politeness limit applied per host.
const crawlRequestsPerSecond = 2.0

// Main represents the program.
type Main struct {
	// Model overrides the Gemini model. Empty selects the default.
	Model string

	// Services for end-to-end testing. When set, Run uses them instead
	// of wiring the real pipeline.
	Indexer   IndexBuilder
	Processor QuestionAnswerer

	fetcher siteqa.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteqa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Tests inject Indexer and Processor; otherwise wire the real
	// pipeline, which needs a Gemini client for both commands.
	if m.Indexer == nil {
		concurrency := cli.Ask.Concurrency
		maxContextChars := cli.Ask.MaxContextChars
		timeout := cli.Ask.Timeout
		if cmd == "sources" {
			concurrency = cli.Sources.Concurrency
		}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		completer := gemini.NewClient(client, m.Model)
		policy := siteqa.DefaultRetryPolicy()
		usage := gemini.NewUsage()

		var fetcher siteqa.Fetcher = qahttp.NewFetcher()
		if cli.Verbose {
			fetcher = qaslog.NewLoggingFetcher(fetcher, logger)
		}
		m.fetcher = fetcher
		defer m.Close()

		var summarizer siteqa.Summarizer = gemini.NewSummarizer(completer, policy, usage)
		if cli.Verbose {
			summarizer = qaslog.NewLoggingSummarizer(summarizer, logger)
		}

		m.Indexer = &index.Indexer{
			Crawler: &crawl.Crawler{
				Fetcher:     fetcher,
				Links:       goquery.NewLinkExtractor(),
				Sitemaps:    qahttp.NewSitemapService(nil),
				Robots:      crawl.NewRobots(nil),
				Limiter:     crawl.NewHostLimiter(crawlRequestsPerSecond),
				Concurrency: concurrency,
				Logger:      logger,
			},
			Cleaner:     trafilatura.NewCleaner(trafilatura.WithFallback(readability.NewCleaner())),
			Summarizer:  summarizer,
			Concurrency: concurrency,
			Logger:      logger,
		}
		m.Processor = &query.Processor{
			Selector:        gemini.NewSelector(completer, policy, usage),
			Generator:       gemini.NewAnswerer(completer, policy, usage),
			MaxContextChars: maxContextChars,
			Timeout:         timeout,
			Logger:          logger,
		}
		defer func() {
			input, output := usage.Totals()
			logger.Info("token usage", "input", input, "output", output)
		}()
	}

	deps.Indexer = m.Indexer
	deps.Processor = m.Processor

	return kongCtx.Run(deps)
}
