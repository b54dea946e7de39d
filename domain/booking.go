package domain

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
// Booked -> Cancelled and Booked -> Completed are the only transitions;
// Cancelled and Completed are terminal.
type BookingStatus string

const (
	BookingBooked    BookingStatus = "Booked"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// ParseBookingStatus converts a stored string back into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingBooked, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

func (s BookingStatus) String() string { return string(s) }

// Booking ties a guest to a room for a date range. It is stored twice
// (canonical and per-user view) and both copies must always agree on
// Status, CheckIn, CheckOut, FoodReq and CleanReq.
type Booking struct {
	ID       string
	UserID   string
	RoomID   string
	RoomNum  int
	CheckIn  time.Time
	CheckOut time.Time
	Status   BookingStatus
	FoodReq  bool
	CleanReq bool
}
