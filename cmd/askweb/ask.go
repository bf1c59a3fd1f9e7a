package main

import (
	"fmt"

	"github.com/fwojciec/askweb"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Answerer.Answer(deps.Ctx, c.Question)
	if err != nil {
		if askweb.ErrorCode(err) == askweb.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "No relevant data found. Use 'askweb ingest' to index a site first.")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
