package crawl

// Order selects the traversal policy for the frontier.
type Order int

// Traversal policies.
const (
	// OrderDFS processes a page's links before its siblings' links.
	OrderDFS Order = iota
	// OrderBFS processes pages level by level in discovery order.
	OrderBFS
)

// Frontier is the crawl worklist with exact URL deduplication. A URL is
// marked seen when it is scheduled, not when it is fetched, so a page
// rediscovered through another parent is never scheduled twice.
//
// The deduplication set is an exact map rather than a probabilistic
// filter: a false positive would silently skip an unvisited in-scope
// page.
type Frontier struct {
	order Order
	seen  map[string]struct{}
	queue []string
}

// NewFrontier creates an empty frontier with the given traversal order.
func NewFrontier(order Order) *Frontier {
	return &Frontier{
		order: order,
		seen:  make(map[string]struct{}),
	}
}

// Push schedules the unseen URLs among urls, preserving their relative
// order under both traversal policies, and returns the ones scheduled.
// Under OrderDFS the batch is placed ahead of all pending work; under
// OrderBFS it is placed behind it.
func (f *Frontier) Push(urls ...string) []string {
	var kept []string
	for _, u := range urls {
		if _, ok := f.seen[u]; ok {
			continue
		}
		f.seen[u] = struct{}{}
		kept = append(kept, u)
	}
	if len(kept) == 0 {
		return nil
	}

	switch f.order {
	case OrderBFS:
		f.queue = append(f.queue, kept...)
	default:
		f.queue = append(append([]string{}, kept...), f.queue...)
	}
	return kept
}

// Pop returns the next URL to process.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	u := f.queue[0]
	f.queue = f.queue[1:]
	return u, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen returns true if the URL has been processed or scheduled.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.seen[url]
	return ok
}
