package handler

import (
	"github.com/tablebook/reservation-system/internal/core/domain"
)

type addBookingRequest struct {
	UserID         string `json:"userId" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,gt=0"`
}

type updateBookingRequest struct {
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,gt=0"`
}

type bookingResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	NumberOfPeople int    `json:"numberOfPeople"`
}

type bookingEnvelope struct {
	Message string          `json:"message"`
	Booking bookingResponse `json:"booking"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		Date:           b.Date.Format(domain.BookingDateFormat),
		Time:           b.Time,
		NumberOfPeople: b.NumberOfPeople,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}
