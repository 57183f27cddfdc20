package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// ListingCache is a read-through cache for booking listings. The key is the
// calendar date in "2006-01-02" form, or the empty string for the unfiltered
// listing.
//
// GetListing also returns the cache generation observed at read time, and
// SetListing stores under that same generation. A listing fetched under
// generation G can therefore only ever land on G: if a write invalidates the
// cache while the caller is refreshing from storage, the refresh is stored
// under the already-orphaned generation and never shadows the write.
// Invalidate discards every cached listing; implementations are free to do so
// lazily (e.g. by bumping the generation counter).
type ListingCache interface {
	GetListing(ctx context.Context, date string) (bookings []domain.Booking, generation int64, ok bool, err error)
	SetListing(ctx context.Context, date string, generation int64, bookings []domain.Booking) error
	Invalidate(ctx context.Context) error
}
