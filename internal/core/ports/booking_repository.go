package ports

import (
	"context"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// BookingRepository defines the persistence interface for bookings.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
	// FindAll returns every booking, or only those on the given calendar
	// date when date is non-nil.
	FindAll(ctx context.Context, date *time.Time) ([]domain.Booking, error)
	// Update replaces the mutable fields (date, time, party size) of the
	// booking with the given id. The owner reference is never touched.
	Update(ctx context.Context, id string, date time.Time, timeSlot string, numberOfPeople int) (*domain.Booking, error)
	// Delete removes the booking with the given id. Deleting an id that
	// does not exist is not an error.
	Delete(ctx context.Context, id string) error
}
