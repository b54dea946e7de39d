package services

import (
	"context"
	"time"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
	appErrors "letstayinn-backend/pkg/errors"
)

// In-memory fakes for the ports interfaces.

type fakeUserRepo struct {
	users map[string]domain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Save(_ context.Context, user domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return appErrors.NewConflictError("email already registered").WithCode("DUPLICATE_EMAIL")
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, appErrors.NewNotFoundError("user")
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, appErrors.NewNotFoundError("user")
}

type fakeEmployeeRepo struct {
	employees map[string]domain.User
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]domain.User{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee domain.User) error {
	for _, existing := range f.employees {
		if existing.Email == employee.Email {
			return appErrors.NewConflictError("email already registered").WithCode("DUPLICATE_EMAIL")
		}
	}
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	employee, ok := f.employees[id]
	if !ok {
		return domain.User{}, appErrors.NewNotFoundError("employee")
	}
	return employee, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee domain.User) error {
	if _, ok := f.employees[employee.ID]; !ok {
		return appErrors.NewNotFoundError("employee")
	}
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, employee domain.User) error {
	if _, ok := f.employees[employee.ID]; !ok {
		return appErrors.NewNotFoundError("employee")
	}
	delete(f.employees, employee.ID)
	return nil
}

type fakeRoomRepo struct {
	rooms map[int]domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int]domain.Room{}}
}

func (f *fakeRoomRepo) Add(_ context.Context, room domain.Room) error {
	if _, ok := f.rooms[room.Number]; ok {
		return appErrors.NewConflictError("room already exists").WithCode("DUPLICATE_ROOM")
	}
	f.rooms[room.Number] = room
	return nil
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, number int) (domain.Room, error) {
	room, ok := f.rooms[number]
	if !ok {
		return domain.Room{}, appErrors.NewNotFoundError("room")
	}
	return room, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room domain.Room) error {
	if _, ok := f.rooms[room.Number]; !ok {
		return appErrors.NewNotFoundError("room")
	}
	f.rooms[room.Number] = room
	return nil
}

func (f *fakeRoomRepo) UpdateAvailability(_ context.Context, number int, available bool) error {
	room, ok := f.rooms[number]
	if !ok {
		return appErrors.NewNotFoundError("room")
	}
	room.IsAvailable = available
	f.rooms[number] = room
	return nil
}

func (f *fakeRoomRepo) ListAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) ListAvailable(_ context.Context) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range f.rooms {
		if r.IsAvailable {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, number int) error {
	if _, ok := f.rooms[number]; !ok {
		return appErrors.NewNotFoundError("room")
	}
	delete(f.rooms, number)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]domain.Booking{}}
}

func (f *fakeBookingRepo) Save(_ context.Context, booking domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; ok {
		return appErrors.NewConflictError("booking already exists").WithCode("DUPLICATE_BOOKING")
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, appErrors.NewNotFoundError("booking")
	}
	return booking, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return appErrors.NewNotFoundError("booking")
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) ListActiveByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && b.Status == domain.BookingBooked {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ScanExpired(_ context.Context, now time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.Status == domain.BookingBooked && b.CheckOut.Before(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkCompleted(_ context.Context, bookingID, userID string) error {
	booking, ok := f.bookings[bookingID]
	if !ok || booking.Status != domain.BookingBooked {
		return appErrors.NewConflictError("booking is not in Booked status").WithCode("NOT_BOOKED")
	}
	booking.Status = domain.BookingCompleted
	f.bookings[bookingID] = booking
	return nil
}

type fakeRequestRepo struct {
	requests map[string]domain.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]domain.ServiceRequest{}}
}

func (f *fakeRequestRepo) Save(_ context.Context, req domain.ServiceRequest) error {
	if _, ok := f.requests[req.ID]; ok {
		return appErrors.NewConflictError("service request already exists").WithCode("DUPLICATE_REQUEST")
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeRequestRepo) GetPending(_ context.Context, requestID string) (domain.ServiceRequest, error) {
	req, ok := f.requests[requestID]
	if !ok || req.Status != domain.ServicePending {
		return domain.ServiceRequest{}, appErrors.NewNotFoundError("pending service request")
	}
	return req, nil
}

func (f *fakeRequestRepo) ListPending(_ context.Context) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range f.requests {
		if r.Status == domain.ServicePending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListRequestedBy(_ context.Context, userID string) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListAssigned(_ context.Context, employeeID string) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range f.requests {
		if r.AssignedTo != nil && *r.AssignedTo == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Assign(_ context.Context, requestID, employeeID string) error {
	req, ok := f.requests[requestID]
	if !ok || req.Status != domain.ServicePending {
		return appErrors.NewNotFoundError("pending service request")
	}
	if req.IsAssigned {
		return appErrors.NewConflictError("service request already assigned").WithCode("ALREADY_ASSIGNED")
	}
	req.IsAssigned = true
	req.AssignedTo = &employeeID
	f.requests[requestID] = req
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, requestID string, newStatus domain.ServiceStatus) (domain.ServiceRequest, error) {
	req, ok := f.requests[requestID]
	if !ok || req.Status != domain.ServicePending {
		return domain.ServiceRequest{}, appErrors.NewNotFoundError("pending service request")
	}
	req.Status = newStatus
	f.requests[requestID] = req
	return req, nil
}

func (f *fakeRequestRepo) DeleteByBooking(_ context.Context, bookingID string) error {
	for id, r := range f.requests {
		if r.BookingID == bookingID {
			delete(f.requests, id)
		}
	}
	return nil
}

type fakeFeedbackRepo struct {
	entries map[string]domain.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{entries: map[string]domain.Feedback{}}
}

func (f *fakeFeedbackRepo) Save(_ context.Context, feedback domain.Feedback) error {
	f.entries[feedback.ID] = feedback
	return nil
}

func (f *fakeFeedbackRepo) GetAll(_ context.Context) ([]domain.Feedback, error) {
	out := make([]domain.Feedback, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListByUser(_ context.Context, userID string) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return appErrors.NewNotFoundError("feedback")
	}
	delete(f.entries, id)
	return nil
}

type fakePublisher struct {
	published []ports.BookingEvent
	err       error
}

func (f *fakePublisher) PublishCancelled(_ context.Context, event ports.BookingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}
