package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/api/metrics"
	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// BookingService implements the booking lifecycle. Every storage failure is
// wrapped with a prefix naming the operation; the underlying error text is
// preserved as the suffix.
type BookingService struct {
	repo   ports.BookingRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

// NewBookingService builds a BookingService. cache may be nil, in which case
// listings always go to the repository.
func NewBookingService(repo ports.BookingRepository, cache ports.ListingCache, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, cache: cache, logger: logger}
}

// Add persists a new booking owned by input.UserID. The owner reference is
// not checked against the users collection; that invariant is maintained by
// the callers alone.
func (s *BookingService) Add(ctx context.Context, input ports.AddBookingInput) (*domain.Booking, error) {
	date, err := domain.ParseBookingDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("Unable to add booking: %w", err)
	}

	booking := &domain.Booking{
		UserID:         input.UserID,
		Date:           date,
		Time:           input.Time,
		NumberOfPeople: input.NumberOfPeople,
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("Unable to add booking: %w", err)
	}

	s.invalidateListings(ctx)
	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().Str("booking_id", created.ID).Str("user_id", created.UserID).Msg("booking created")
	return created, nil
}

// ByUser returns every booking owned by userID. An empty result is not an
// error at this layer.
func (s *BookingService) ByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Unable to fetch bookings: %w", err)
	}
	return bookings, nil
}

// All returns every booking, or only those on the given calendar date when
// date is non-empty. Listings are served read-through from the cache; any
// cache failure falls back to the repository.
func (s *BookingService) All(ctx context.Context, date string) ([]domain.Booking, error) {
	var generation int64
	cacheable := false
	if s.cache != nil {
		cached, gen, ok, err := s.cache.GetListing(ctx, date)
		if err != nil {
			metrics.ListingCacheTotal.WithLabelValues("error").Inc()
			s.logger.Debug().Err(err).Msg("listing cache read failed")
		} else if ok {
			metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
			generation = gen
			cacheable = true
		}
	}

	bookings, err := s.fetchAll(ctx, date)
	if err != nil {
		return nil, err
	}

	// Store under the generation observed before the fetch: a concurrent
	// write that invalidated the cache in the meantime already bumped the
	// counter, so this listing lands on the orphaned generation and cannot
	// shadow that write.
	if cacheable {
		if err := s.cache.SetListing(ctx, date, generation, bookings); err != nil {
			s.logger.Debug().Err(err).Msg("listing cache write failed")
		}
	}
	return bookings, nil
}

func (s *BookingService) fetchAll(ctx context.Context, date string) ([]domain.Booking, error) {
	if date == "" {
		bookings, err := s.repo.FindAll(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("Unable to fetch bookings: %w", err)
		}
		return bookings, nil
	}

	d, err := domain.ParseBookingDate(date)
	if err != nil {
		return nil, fmt.Errorf("Unable to fetch bookings: %w", err)
	}
	bookings, err := s.repo.FindAll(ctx, &d)
	if err != nil {
		return nil, fmt.Errorf("Unable to fetch bookings: %w", err)
	}
	return bookings, nil
}

// ByID returns the booking with the given id, or ErrBookingNotFound.
func (s *BookingService) ByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("Failed to fetch booking: %w", err)
	}
	return booking, nil
}

// Update replaces the date, time and party size of the booking with the given
// id. The owner reference is immutable. A missing id is ErrBookingNotFound,
// not a storage failure.
func (s *BookingService) Update(ctx context.Context, id string, input ports.UpdateBookingInput) (*domain.Booking, error) {
	date, err := domain.ParseBookingDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("Failed to update booking: %w", err)
	}

	updated, err := s.repo.Update(ctx, id, date, input.Time, input.NumberOfPeople)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("Failed to update booking: %w", err)
	}

	s.invalidateListings(ctx)
	metrics.BookingsUpdatedTotal.Inc()
	s.logger.Info().Str("booking_id", id).Msg("booking updated")
	return updated, nil
}

// Cancel deletes the booking with the given id. Cancelling an id that does
// not exist is a no-op success.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("Unable to cancel booking: %w", err)
	}

	s.invalidateListings(ctx)
	metrics.BookingsCancelledTotal.Inc()
	s.logger.Info().Str("booking_id", id).Msg("booking cancelled")
	return nil
}

func (s *BookingService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("listing cache invalidation failed")
	}
}
