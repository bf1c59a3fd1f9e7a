package crawl_test

import (
	"testing"

	"github.com/fwojciec/askweb/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	t.Parallel()

	t.Run("new tree holds only the root", func(t *testing.T) {
		t.Parallel()

		tree := crawl.NewTree("https://example.com")

		assert.Equal(t, "https://example.com", tree.Root())
		assert.Equal(t, 1, tree.Len())
		assert.Empty(t, tree.Children("https://example.com"))
	})

	t.Run("records children in discovery order", func(t *testing.T) {
		t.Parallel()

		tree := crawl.NewTree("root")
		tree.AddChild("root", "a")
		tree.AddChild("root", "b")
		tree.AddChild("a", "a1")

		assert.Equal(t, []string{"a", "b"}, tree.Children("root"))
		assert.Equal(t, []string{"a1"}, tree.Children("a"))
		assert.Equal(t, 4, tree.Len())
	})

	t.Run("walks depth-first with depths", func(t *testing.T) {
		t.Parallel()

		tree := crawl.NewTree("root")
		tree.AddChild("root", "a")
		tree.AddChild("root", "b")
		tree.AddChild("a", "a1")

		type visit struct {
			url   string
			depth int
		}
		var visits []visit
		tree.Walk(func(url string, depth int) {
			visits = append(visits, visit{url, depth})
		})

		assert.Equal(t, []visit{
			{"root", 0},
			{"a", 1},
			{"a1", 2},
			{"b", 1},
		}, visits)
	})
}
