package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letstayinn-backend/domain"
)

func TestKeyDerivation(t *testing.T) {
	assert.Equal(t, "User#u-1", UserPK("u-1"))
	assert.Equal(t, "Email#guest@example.com", EmailPK("guest@example.com"))
	assert.Equal(t, "Employee#e-9", EmployeeSK("e-9"))
	assert.Equal(t, "room#101", RoomSK(101))
	assert.Equal(t, "Booking#b-7", BookingPK("b-7"))
	assert.Equal(t, "booking#b-7", UserBookingSK("b-7"))
	assert.Equal(t, "Service#Pending#s-3", ServiceQueueSK(domain.ServicePending, "s-3"))
	assert.Equal(t, "Service#Done#", ServiceQueueSKPrefix(domain.ServiceDone))
	assert.Equal(t, "Made#Pending#s-3", ServiceMadeSK(domain.ServicePending, "s-3"))
	assert.Equal(t, "Feedback#f-1", FeedbackSK("f-1"))
}

func TestUserRoundTrip(t *testing.T) {
	u := domain.User{
		ID:        "u-1",
		Name:      "Asha",
		Email:     "asha@example.com",
		Password:  "$2a$10$hash",
		Role:      domain.RoleCleaningStaff,
		Available: true,
	}

	profile := EncodeUserProfile(u)
	assert.Equal(t, "User#u-1", profile.PK)
	assert.Equal(t, ProfileSK, profile.SK)

	roster := EncodeEmployeeRosterEntry(u)
	assert.Equal(t, EmployeePK, roster.PK)
	assert.Equal(t, "Employee#u-1", roster.SK)

	got, err := DecodeUser(profile)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = DecodeUser(roster)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestDecodeUserCorrupt(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserItem)
	}{
		{"missing id", func(it *UserItem) { it.ID = "" }},
		{"missing email", func(it *UserItem) { it.Email = "" }},
		{"unknown role", func(it *UserItem) { it.Role = "Janitor" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := EncodeUserProfile(domain.User{ID: "u-1", Email: "a@b.c", Role: domain.RoleGuest})
			tt.mutate(&it)
			_, err := DecodeUser(it)
			assert.ErrorIs(t, err, ErrCorruptRecord)
		})
	}
}

func TestEmailPointerRoundTrip(t *testing.T) {
	it := EncodeEmailPointer("asha@example.com", "u-1")
	assert.Equal(t, "Email#asha@example.com", it.PK)
	assert.Equal(t, EmailSK, it.SK)

	id, err := DecodeEmailPointer(it)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)

	_, err = DecodeEmailPointer(EmailItem{PK: it.PK, SK: it.SK})
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestRoomRoundTrip(t *testing.T) {
	r := domain.Room{
		ID:          "r-1",
		Number:      204,
		Type:        domain.RoomDeluxe,
		Price:       180,
		IsAvailable: true,
		Description: "Garden view",
	}

	it := EncodeRoom(r)
	assert.Equal(t, RoomsPK, it.PK)
	assert.Equal(t, "room#204", it.SK)

	got, err := DecodeRoom(it)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	it.Type = "Penthouse"
	_, err = DecodeRoom(it)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestBookingCopiesAgree(t *testing.T) {
	b := domain.Booking{
		ID:       "b-7",
		UserID:   "u-1",
		RoomID:   "r-1",
		RoomNum:  204,
		CheckIn:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Status:   domain.BookingBooked,
		FoodReq:  true,
	}

	meta := EncodeBookingMeta(b)
	assert.Equal(t, "Booking#b-7", meta.PK)
	assert.Equal(t, BookingMetaSK, meta.SK)

	view := EncodeBookingUserView(b)
	assert.Equal(t, "User#u-1", view.PK)
	assert.Equal(t, "booking#b-7", view.SK)

	// Payloads must match so either copy decodes to the same booking.
	meta.PK, meta.SK = view.PK, view.SK
	assert.Equal(t, view, meta)

	got, err := DecodeBooking(view)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestDecodeBookingCorrupt(t *testing.T) {
	base := func() BookingItem {
		return EncodeBookingMeta(domain.Booking{
			ID: "b-1", UserID: "u-1",
			CheckIn:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
			Status:   domain.BookingBooked,
		})
	}

	it := base()
	it.Status = "Paused"
	_, err := DecodeBooking(it)
	assert.ErrorIs(t, err, ErrCorruptRecord)

	it = base()
	it.CheckOut = "not-a-date"
	_, err = DecodeBooking(it)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestServiceRequestCopies(t *testing.T) {
	emp := "e-9"
	s := domain.ServiceRequest{
		ID:         "s-3",
		UserID:     "u-1",
		BookingID:  "b-7",
		RoomNum:    204,
		Type:       domain.ServiceFood,
		Status:     domain.ServicePending,
		IsAssigned: true,
		AssignedTo: &emp,
		Details:    "Breakfast for two",
		CreatedAt:  time.Date(2026, 1, 11, 8, 30, 0, 0, time.UTC),
	}

	queue := EncodeServiceQueue(s)
	assert.Equal(t, ServiceRequestsPK, queue.PK)
	assert.Equal(t, "Service#Pending#s-3", queue.SK)

	made := EncodeServiceMade(s)
	assert.Equal(t, "User#u-1", made.PK)
	assert.Equal(t, "Made#Pending#s-3", made.SK)

	assigned := EncodeServiceAssigned(s, emp)
	assert.Equal(t, "User#e-9", assigned.PK)
	assert.Equal(t, "Service#Pending#s-3", assigned.SK)

	for _, it := range []ServiceRequestItem{queue, made, assigned} {
		got, err := DecodeServiceRequest(it)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestDecodeServiceRequestCorrupt(t *testing.T) {
	s := domain.ServiceRequest{
		ID: "s-3", UserID: "u-1",
		Type: domain.ServiceCleaning, Status: domain.ServicePending,
		CreatedAt: time.Now(),
	}

	it := EncodeServiceQueue(s)
	it.IsAssigned = true
	it.AssignedTo = nil
	_, err := DecodeServiceRequest(it)
	assert.ErrorIs(t, err, ErrCorruptRecord)

	it = EncodeServiceQueue(s)
	it.Type = "Laundry"
	_, err = DecodeServiceRequest(it)
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestFeedbackRoundTrip(t *testing.T) {
	rating := 4
	f := domain.Feedback{
		ID:        "f-1",
		UserID:    "u-1",
		UserName:  "Asha",
		Message:   "Lovely stay",
		Rating:    &rating,
		CreatedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	it := EncodeFeedback(f)
	assert.Equal(t, FeedbacksPK, it.PK)
	assert.Equal(t, "Feedback#f-1", it.SK)

	got, err := DecodeFeedback(it)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	f.Rating = nil
	got, err = DecodeFeedback(EncodeFeedback(f))
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
}
