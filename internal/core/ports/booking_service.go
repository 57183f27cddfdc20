package ports

import (
	"context"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// AddBookingInput carries the fields needed to create a booking. Date is the
// calendar date in "2006-01-02" form; Time is the free-form slot string.
type AddBookingInput struct {
	UserID         string
	Date           string
	Time           string
	NumberOfPeople int
}

// UpdateBookingInput carries the mutable fields of a booking edit. The owner
// reference is deliberately absent: it cannot be changed.
type UpdateBookingInput struct {
	Date           string
	Time           string
	NumberOfPeople int
}

// BookingService covers the booking lifecycle.
type BookingService interface {
	Add(ctx context.Context, input AddBookingInput) (*domain.Booking, error)
	ByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	// All returns every booking, or only those on the given date ("2006-01-02")
	// when date is non-empty.
	All(ctx context.Context, date string) ([]domain.Booking, error)
	ByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}
