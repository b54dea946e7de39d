package domain

import "fmt"

// RoomType is the room category offered by the hotel.
type RoomType string

const (
	RoomStandard  RoomType = "Standard"
	RoomDeluxe    RoomType = "Deluxe"
	RoomSuite     RoomType = "Suite"
	RoomExecutive RoomType = "Executive"
)

// ParseRoomType converts a stored string back into a RoomType.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomStandard, RoomDeluxe, RoomSuite, RoomExecutive:
		return RoomType(s), nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

func (t RoomType) String() string { return string(t) }

// Room is a bookable hotel room. Availability lives only here; bookings
// toggle it but never carry their own copy.
type Room struct {
	ID          string
	Number      int
	Type        RoomType
	Price       int
	IsAvailable bool
	Description string
}
