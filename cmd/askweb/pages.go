package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/askweb"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx, askweb.PageFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages ingested yet. Use 'askweb ingest' to index a site.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %d chunks  %s\n",
			p.URL, p.Chunks, p.FetchedAt.Format(time.RFC3339))
	}

	return nil
}
