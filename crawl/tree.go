package crawl

// Tree records the parent→child structure discovered during a crawl.
// It is telemetry only: the crawler never reads it back, and cycles in
// the underlying link graph are broken by the frontier's deduplication,
// so every node has exactly one parent.
//
// Nodes are kept as an adjacency mapping keyed by URL rather than as
// linked node structs.
type Tree struct {
	root     string
	children map[string][]string
	count    int
}

// NewTree creates a tree rooted at the seed URL.
func NewTree(root string) *Tree {
	return &Tree{
		root:     root,
		children: make(map[string][]string),
		count:    1,
	}
}

// Root returns the seed URL.
func (t *Tree) Root() string {
	return t.root
}

// AddChild attaches child under parent in discovery order.
func (t *Tree) AddChild(parent, child string) {
	t.children[parent] = append(t.children[parent], child)
	t.count++
}

// Children returns the children of a URL in discovery order.
func (t *Tree) Children(url string) []string {
	return t.children[url]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Walk visits every node depth-first starting at the root, calling fn
// with each URL and its depth.
func (t *Tree) Walk(fn func(url string, depth int)) {
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(url string, depth int, fn func(string, int)) {
	fn(url, depth)
	for _, child := range t.children[url] {
		t.walk(child, depth+1, fn)
	}
}
