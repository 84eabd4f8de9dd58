package mock

import (
	"context"

	"github.com/fwojciec/carads"
)

var _ carads.RawDocumentService = (*RawDocumentService)(nil)

// RawDocumentService is a mock implementation of carads.RawDocumentService.
type RawDocumentService struct {
	CreateRawDocumentFn func(ctx context.Context, doc *carads.RawDocument) error
	PendingURLsFn       func(ctx context.Context) ([]string, error)
	FindDocumentsFn     func(ctx context.Context, urls []string) ([]*carads.RawDocument, error)
}

func (s *RawDocumentService) CreateRawDocument(ctx context.Context, doc *carads.RawDocument) error {
	return s.CreateRawDocumentFn(ctx, doc)
}

func (s *RawDocumentService) PendingURLs(ctx context.Context) ([]string, error) {
	return s.PendingURLsFn(ctx)
}

func (s *RawDocumentService) FindDocuments(ctx context.Context, urls []string) ([]*carads.RawDocument, error) {
	return s.FindDocumentsFn(ctx, urls)
}
