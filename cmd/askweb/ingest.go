package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/askweb"
	"github.com/fwojciec/askweb/crawl"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	domain := c.Domain
	if domain == "" {
		u, err := url.Parse(c.URL)
		if err != nil || u.Hostname() == "" {
			fmt.Fprintf(deps.Stderr, "error: cannot derive a domain from %q, pass one with --domain\n", c.URL)
			return askweb.Errorf(askweb.EINVALID, "invalid seed URL %q", c.URL)
		}
		domain = u.Hostname()
	}

	deps.Crawler.Scope = askweb.LinkScope{
		BaseURL: c.URL,
		Domain:  domain,
		Logger:  deps.Crawler.Logger,
	}
	deps.Crawler.ChunkSize = c.ChunkSize
	deps.Crawler.MaxPages = c.MaxPages
	if c.Order == "bfs" {
		deps.Crawler.Order = crawl.OrderBFS
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  %s (%d records)\n", event.URL, event.Records)
		case crawl.ProgressFinished:
			// Summary printed after the crawl completes
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d pages (%d records, %s)\n",
		result.Pages, result.Records, crawl.FormatBytes(result.Bytes))

	if c.Tree {
		result.Tree.Walk(func(url string, depth int) {
			fmt.Fprintf(deps.Stdout, "%s%s\n", strings.Repeat("  ", depth), url)
		})
	}

	return nil
}
