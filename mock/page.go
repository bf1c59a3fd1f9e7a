package mock

import (
	"context"

	"github.com/fwojciec/askweb"
)

var _ askweb.PageService = (*PageService)(nil)

// PageService is a mock implementation of askweb.PageService.
type PageService struct {
	CreatePageFn func(ctx context.Context, page *askweb.Page) error
	FindPagesFn  func(ctx context.Context, filter askweb.PageFilter) ([]*askweb.Page, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *askweb.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPages(ctx context.Context, filter askweb.PageFilter) ([]*askweb.Page, error) {
	return s.FindPagesFn(ctx, filter)
}
