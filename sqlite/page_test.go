package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/askweb"
	"github.com/fwojciec/askweb/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestPageService_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("creates a page with generated ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))

		page := &askweb.Page{
			URL:         "https://example.com/docs",
			Title:       "Docs",
			ContentHash: "abc123",
			HeadBytes:   42,
			BodyBytes:   1000,
			Chunks:      2,
			FetchedAt:   time.Now().UTC(),
		}
		require.NoError(t, svc.CreatePage(context.Background(), page))
		assert.NotEmpty(t, page.ID)

		pages, err := svc.FindPages(context.Background(), askweb.PageFilter{})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/docs", pages[0].URL)
		assert.Equal(t, "Docs", pages[0].Title)
		assert.Equal(t, 2, pages[0].Chunks)
	})

	t.Run("replaces the record when a URL is re-ingested", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, &askweb.Page{URL: "https://example.com", Title: "Old"}))
		require.NoError(t, svc.CreatePage(ctx, &askweb.Page{URL: "https://example.com", Title: "New"}))

		pages, err := svc.FindPages(ctx, askweb.PageFilter{})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "New", pages[0].Title)
	})

	t.Run("rejects a page without a URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))

		err := svc.CreatePage(context.Background(), &askweb.Page{})
		require.Error(t, err)
		assert.Equal(t, askweb.EINVALID, askweb.ErrorCode(err))
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, &askweb.Page{URL: "https://example.com/a"}))
		require.NoError(t, svc.CreatePage(ctx, &askweb.Page{URL: "https://example.com/b"}))

		url := "https://example.com/b"
		pages, err := svc.FindPages(ctx, askweb.PageFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, url, pages[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))
		ctx := context.Background()

		for _, u := range []string{"https://x/a", "https://x/b", "https://x/c"} {
			require.NoError(t, svc.CreatePage(ctx, &askweb.Page{URL: u}))
		}

		pages, err := svc.FindPages(ctx, askweb.PageFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, pages, 2)

		pages, err = svc.FindPages(ctx, askweb.PageFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})

	t.Run("returns nothing for an empty archive", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(mustOpenDB(t))

		pages, err := svc.FindPages(context.Background(), askweb.PageFilter{})
		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}
