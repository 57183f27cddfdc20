package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking is a reserved table slot. UserID references the owning User by id;
// there is no foreign-key constraint in the store, the reference is
// maintained by application logic only. Date is normalized to midnight UTC
// so exact-date queries are plain equality; Time stays a free-form string
// ("18:00", "7pm") exactly as the client supplied it.
type Booking struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	NumberOfPeople int       `json:"numberOfPeople"`
}

// BookingDateFormat is the wire format for booking dates.
const BookingDateFormat = "2006-01-02"

// ParseBookingDate parses a calendar date and normalizes it to midnight UTC.
func ParseBookingDate(s string) (time.Time, error) {
	d, err := time.Parse(BookingDateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(), nil
}
