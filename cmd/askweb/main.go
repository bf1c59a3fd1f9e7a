package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/askweb"
	"github.com/fwojciec/askweb/answer"
	"github.com/fwojciec/askweb/crawl"
	"github.com/fwojciec/askweb/gemini"
	"github.com/fwojciec/askweb/goquery"
	askhttp "github.com/fwojciec/askweb/http"
	askqdrant "github.com/fwojciec/askweb/qdrant"
	askslog "github.com/fwojciec/askweb/slog"
	"github.com/fwojciec/askweb/sqlite"
	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
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

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the crawl archive.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService askweb.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env if present; environment variables take precedence.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("askweb"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'askweb --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ASKWEB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire command-specific dependencies based on command
	if cmd == "ingest" {
		client, err := geminiClient(ctx, stderr)
		if err != nil {
			return err
		}

		qc, err := qdrantClient()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set QDRANT_HOST and QDRANT_PORT to point at your Qdrant instance")
			return fmt.Errorf("failed to connect to Qdrant: %w", err)
		}

		fetcher := askslog.NewLoggingFetcher(askhttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
			Embedder:  gemini.NewEmbedder(client, ""),
			Index:     askqdrant.NewIndex(qc, cli.Ingest.Collection),
			Pages:     m.PageService,
			Logger:    logger,
		}
	}

	if cmd == "ask" {
		client, err := geminiClient(ctx, stderr)
		if err != nil {
			return err
		}

		qc, err := qdrantClient()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set QDRANT_HOST and QDRANT_PORT to point at your Qdrant instance")
			return fmt.Errorf("failed to connect to Qdrant: %w", err)
		}

		deps.Answerer = &answer.Pipeline{
			Embedder:  gemini.NewEmbedder(client, ""),
			Index:     askqdrant.NewIndex(qc, cli.Ask.Collection),
			Completer: gemini.NewCompleter(client, ""),
			TopK:      cli.Ask.TopK,
		}
	}

	return kongCtx.Run(deps)
}

// geminiClient creates a Gemini API client from GEMINI_API_KEY.
func geminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

// qdrantClient creates a Qdrant client from QDRANT_HOST, QDRANT_PORT and
// QDRANT_API_KEY. Defaults to localhost:6334 (the gRPC port).
func qdrantClient() (*qdrant.Client, error) {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		host = "localhost"
	}

	port := 6334
	if p := os.Getenv("QDRANT_PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid QDRANT_PORT %q: %w", p, err)
		}
		port = n
	}

	return qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: os.Getenv("QDRANT_API_KEY"),
		UseTLS: os.Getenv("QDRANT_API_KEY") != "",
	})
}

func defaultDBPath() string {
	if path := os.Getenv("ASKWEB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "askweb.db"
	}
	dir := filepath.Join(home, ".askweb")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "askweb.db")
}
