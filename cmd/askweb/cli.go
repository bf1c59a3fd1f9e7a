package main

import (
	"context"
	"io"

	"github.com/fwojciec/askweb"
	"github.com/fwojciec/askweb/answer"
	"github.com/fwojciec/askweb/crawl"
	"github.com/fwojciec/askweb/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Pages    askweb.PageService
	Crawler  *crawl.Crawler
	Answerer *answer.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest IngestCmd `cmd:"" help:"Crawl a website and index its content"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about indexed content"`
	Pages  PagesCmd  `cmd:"" help:"List ingested pages"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL        string `arg:"" help:"Seed URL to crawl"`
	Domain     string `short:"d" help:"Restrict crawling to this host (defaults to the seed URL's host)"`
	Collection string `short:"c" default:"askweb" help:"Vector index collection name"`
	ChunkSize  int    `default:"1000" help:"Words per body chunk"`
	Order      string `default:"dfs" enum:"dfs,bfs" help:"Traversal order (dfs or bfs)"`
	MaxPages   int    `help:"Stop after this many pages (0 = no limit)"`
	Tree       bool   `short:"t" help:"Print the crawl tree after ingesting"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question   string `arg:"" help:"Question to ask about the indexed content"`
	Collection string `short:"c" default:"askweb" help:"Vector index collection name"`
	TopK       int    `short:"k" default:"1" help:"Number of records retrieved per question"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Limit int `help:"Maximum number of pages to list (0 = all)"`
}
