package mock

import (
	"context"

	"github.com/fwojciec/carads"
)

var _ carads.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of carads.ListingService.
type ListingService struct {
	SaveListingsFn func(ctx context.Context, listings []*carads.Listing) error
	FindListingsFn func(ctx context.Context, filter carads.ListingFilter) ([]*carads.Listing, error)
}

func (s *ListingService) SaveListings(ctx context.Context, listings []*carads.Listing) error {
	return s.SaveListingsFn(ctx, listings)
}

func (s *ListingService) FindListings(ctx context.Context, filter carads.ListingFilter) ([]*carads.Listing, error) {
	return s.FindListingsFn(ctx, filter)
}
