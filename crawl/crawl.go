// Package crawl provides the site ingestion pipeline. It coordinates
// fetching, fragment extraction, chunking, embedding and index writes,
// following in-scope links until the reachable set is exhausted.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/askweb"
)

// DefaultChunkSize is the number of words per body chunk.
const DefaultChunkSize = 1000

// Crawler orchestrates the ingestion of a website into the vector index.
// All network operations run sequentially: for each page the head record
// strictly precedes the body-chunk records, which strictly precede the
// scheduling of the page's children.
type Crawler struct {
	Fetcher   askweb.Fetcher
	Extractor askweb.Extractor
	Embedder  askweb.Embedder
	Index     askweb.VectorIndex
	Scope     askweb.LinkScope

	// Pages optionally archives ingested pages. Archive failures are
	// logged and skipped; they never abort the crawl.
	Pages askweb.PageService

	Logger *slog.Logger

	// ChunkSize is the number of words per body chunk.
	// Defaults to DefaultChunkSize.
	ChunkSize int

	// Order selects depth-first (default) or breadth-first traversal.
	Order Order

	// MaxPages caps the number of pages processed. Zero means no cap,
	// in which case a site with an unbounded reachable set (infinite
	// pagination) will not terminate.
	MaxPages int
}

// Result holds the outcome of a crawl.
type Result struct {
	Pages   int
	Records int
	Bytes   int
	Tree    *Tree
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressPage ProgressType = iota
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	URL     string
	Records int
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run ingests the site reachable from the seed URL. Any fetch, embedding
// or index failure aborts the whole traversal; records written before the
// failure stay in the index.
func (c *Crawler) Run(ctx context.Context, seed string, progress ProgressFunc) (*Result, error) {
	frontier := NewFrontier(c.Order)
	frontier.Push(seed)

	result := Result{Tree: NewTree(seed)}

	for {
		url, ok := frontier.Pop()
		if !ok {
			break
		}
		if c.MaxPages > 0 && result.Pages >= c.MaxPages {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := c.ingestPage(ctx, url, frontier, result.Tree)
		if err != nil {
			return nil, err
		}

		result.Pages++
		result.Records += len(records)
		for _, rec := range records {
			result.Bytes += len(rec.Metadata.Body)
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressPage, URL: url, Records: len(records)})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished})
	}

	return &result, nil
}

// ingestPage fetches one page, writes its head record and body-chunk
// records to the index, archives it, and schedules its in-scope links.
// It returns the records written.
func (c *Crawler) ingestPage(ctx context.Context, url string, frontier *Frontier, tree *Tree) ([]askweb.Record, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	// Head record first, then one record per body chunk. Each chunk
	// record carries the page head alongside its chunk so retrieval can
	// surface page-level context with the matched text.
	chunkSize := c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunks := askweb.ChunkWords(extracted.Body, chunkSize)

	records := make([]askweb.Record, 0, 1+len(chunks))

	// A page may have no head content at all. It gets no head record;
	// a blank fragment carries nothing to embed or retrieve.
	if extracted.Head != "" {
		headVec, err := c.Embedder.Embed(ctx, extracted.Head)
		if err != nil {
			return nil, fmt.Errorf("embed head of %s: %w", url, err)
		}
		records = append(records, askweb.Record{
			ID:        askweb.RecordID(url, 0),
			Embedding: headVec,
			Metadata:  askweb.RecordMetadata{URL: url, Head: extracted.Head},
		})
	}

	for i, chunk := range chunks {
		vec, err := c.Embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d of %s: %w", i+1, url, err)
		}
		records = append(records, askweb.Record{
			ID:        askweb.RecordID(url, i+1),
			Embedding: vec,
			Metadata:  askweb.RecordMetadata{URL: url, Head: extracted.Head, Body: chunk},
		})
	}

	if err := c.Index.Add(ctx, records); err != nil {
		return nil, fmt.Errorf("index %s: %w", url, err)
	}

	c.archivePage(ctx, url, extracted, len(chunks))

	for _, link := range frontier.Push(c.Scope.Filter(url, extracted.Links)...) {
		tree.AddChild(url, link)
	}

	return records, nil
}

// archivePage records the ingested page in the crawl archive, if one is
// configured.
func (c *Crawler) archivePage(ctx context.Context, url string, extracted *askweb.ExtractResult, chunks int) {
	if c.Pages == nil {
		return
	}

	page := &askweb.Page{
		URL:         url,
		Title:       extracted.Title,
		ContentHash: hashContent(extracted.Head + extracted.Body),
		HeadBytes:   len(extracted.Head),
		BodyBytes:   len(extracted.Body),
		Chunks:      chunks,
		FetchedAt:   time.Now().UTC(),
	}
	if err := c.Pages.CreatePage(ctx, page); err != nil {
		c.logger().Warn("failed to archive page", "url", url, "err", err)
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// hashContent computes the xxHash of a page's content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
