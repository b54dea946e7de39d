package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/application/services"
	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/interfaces/http/rest/handlers"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
)

// In-memory repositories backing a full router for request-level tests.

type memUserRepo struct{ users map[string]domain.User }

func (m *memUserRepo) Save(_ context.Context, u domain.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return appErrors.NewConflictError("email already registered").WithCode("DUPLICATE_EMAIL")
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, appErrors.NewNotFoundError("user")
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, appErrors.NewNotFoundError("user")
}

type memEmployeeRepo struct{ employees map[string]domain.User }

func (m *memEmployeeRepo) Create(_ context.Context, e domain.User) error {
	m.employees[e.ID] = e
	return nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	e, ok := m.employees[id]
	if !ok {
		return domain.User{}, appErrors.NewNotFoundError("employee")
	}
	return e, nil
}

func (m *memEmployeeRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e domain.User) error {
	m.employees[e.ID] = e
	return nil
}

func (m *memEmployeeRepo) Delete(_ context.Context, e domain.User) error {
	delete(m.employees, e.ID)
	return nil
}

type memRoomRepo struct{ rooms map[int]domain.Room }

func (m *memRoomRepo) Add(_ context.Context, r domain.Room) error {
	if _, ok := m.rooms[r.Number]; ok {
		return appErrors.NewConflictError("room exists").WithCode("DUPLICATE_ROOM")
	}
	m.rooms[r.Number] = r
	return nil
}

func (m *memRoomRepo) GetByNumber(_ context.Context, number int) (domain.Room, error) {
	r, ok := m.rooms[number]
	if !ok {
		return domain.Room{}, appErrors.NewNotFoundError("room")
	}
	return r, nil
}

func (m *memRoomRepo) Update(_ context.Context, r domain.Room) error {
	m.rooms[r.Number] = r
	return nil
}

func (m *memRoomRepo) UpdateAvailability(_ context.Context, number int, available bool) error {
	r, ok := m.rooms[number]
	if !ok {
		return appErrors.NewNotFoundError("room")
	}
	r.IsAvailable = available
	m.rooms[number] = r
	return nil
}

func (m *memRoomRepo) ListAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRoomRepo) ListAvailable(_ context.Context) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range m.rooms {
		if r.IsAvailable {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRoomRepo) Delete(_ context.Context, number int) error {
	delete(m.rooms, number)
	return nil
}

type memBookingRepo struct{ bookings map[string]domain.Booking }

func (m *memBookingRepo) Save(_ context.Context, b domain.Booking) error {
	m.bookings[b.ID] = b
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return domain.Booking{}, appErrors.NewNotFoundError("booking")
	}
	return b, nil
}

func (m *memBookingRepo) Update(_ context.Context, b domain.Booking) error {
	m.bookings[b.ID] = b
	return nil
}

func (m *memBookingRepo) ListActiveByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID == userID && b.Status == domain.BookingBooked {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) ScanExpired(_ context.Context, _ time.Time) ([]domain.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) MarkCompleted(_ context.Context, _, _ string) error { return nil }

type memRequestRepo struct{ requests map[string]domain.ServiceRequest }

func (m *memRequestRepo) Save(_ context.Context, r domain.ServiceRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *memRequestRepo) GetPending(_ context.Context, id string) (domain.ServiceRequest, error) {
	r, ok := m.requests[id]
	if !ok || r.Status != domain.ServicePending {
		return domain.ServiceRequest{}, appErrors.NewNotFoundError("service request")
	}
	return r, nil
}

func (m *memRequestRepo) ListPending(_ context.Context) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range m.requests {
		if r.Status == domain.ServicePending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) ListRequestedBy(_ context.Context, userID string) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) ListAssigned(_ context.Context, employeeID string) ([]domain.ServiceRequest, error) {
	var out []domain.ServiceRequest
	for _, r := range m.requests {
		if r.AssignedTo != nil && *r.AssignedTo == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) Assign(_ context.Context, requestID, employeeID string) error {
	r, ok := m.requests[requestID]
	if !ok {
		return appErrors.NewNotFoundError("service request")
	}
	r.IsAssigned = true
	r.AssignedTo = &employeeID
	m.requests[requestID] = r
	return nil
}

func (m *memRequestRepo) UpdateStatus(_ context.Context, requestID string, newStatus domain.ServiceStatus) (domain.ServiceRequest, error) {
	r, ok := m.requests[requestID]
	if !ok {
		return domain.ServiceRequest{}, appErrors.NewNotFoundError("service request")
	}
	r.Status = newStatus
	m.requests[requestID] = r
	return r, nil
}

func (m *memRequestRepo) DeleteByBooking(_ context.Context, bookingID string) error {
	for id, r := range m.requests {
		if r.BookingID == bookingID {
			delete(m.requests, id)
		}
	}
	return nil
}

type memFeedbackRepo struct{ entries map[string]domain.Feedback }

func (m *memFeedbackRepo) Save(_ context.Context, f domain.Feedback) error {
	m.entries[f.ID] = f
	return nil
}

func (m *memFeedbackRepo) GetAll(_ context.Context) ([]domain.Feedback, error) {
	out := make([]domain.Feedback, 0, len(m.entries))
	for _, f := range m.entries {
		out = append(out, f)
	}
	return out, nil
}

func (m *memFeedbackRepo) ListByUser(_ context.Context, userID string) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, f := range m.entries {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFeedbackRepo) Delete(_ context.Context, id string) error {
	delete(m.entries, id)
	return nil
}

type nopPublisher struct{}

func (nopPublisher) PublishCancelled(_ context.Context, _ ports.BookingEvent) error { return nil }

type testEnv struct {
	server    *httptest.Server
	users     *memUserRepo
	generator *auth.JWTGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	jwtCfg := auth.JWTConfig{SecretKey: "router-test-secret", Issuer: "letstayinn-test"}
	generator, err := auth.NewJWTGenerator(jwtCfg)
	require.NoError(t, err)
	validator, err := auth.NewJWTValidator(jwtCfg)
	require.NoError(t, err)

	users := &memUserRepo{users: map[string]domain.User{}}
	employees := &memEmployeeRepo{employees: map[string]domain.User{}}
	rooms := &memRoomRepo{rooms: map[int]domain.Room{}}
	bookings := &memBookingRepo{bookings: map[string]domain.Booking{}}
	requests := &memRequestRepo{requests: map[string]domain.ServiceRequest{}}
	feedback := &memFeedbackRepo{entries: map[string]domain.Feedback{}}

	userSvc := services.NewUserService(users, generator, logger)
	employeeSvc := services.NewEmployeeService(employees, logger)
	roomSvc := services.NewRoomService(rooms, logger)
	bookingSvc := services.NewBookingService(bookings, rooms, nopPublisher{}, logger)
	requestSvc := services.NewServiceRequestService(requests, bookings, employees, logger)
	feedbackSvc := services.NewFeedbackService(feedback, logger)

	eh := appErrors.NewErrorHandler(logger)
	router := NewRouter(
		&config.Config{EnableCORS: false},
		validator,
		handlers.NewAuthHandler(userSvc, eh, logger),
		handlers.NewRoomHandler(roomSvc, eh, logger),
		handlers.NewBookingHandler(bookingSvc, eh, logger),
		handlers.NewServiceRequestHandler(requestSvc, eh, logger),
		handlers.NewEmployeeHandler(employeeSvc, eh, logger),
		handlers.NewFeedbackHandler(feedbackSvc, eh, logger),
		logger,
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return &testEnv{server: server, users: users, generator: generator}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) tokenFor(t *testing.T, user domain.User) string {
	t.Helper()
	e.users.users[user.ID] = user
	token, err := e.generator.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestSignupLoginAndProfile(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Asha", "email": "Asha@Example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login handlers.LoginResponse
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)

	resp = env.do(t, http.MethodGet, "/api/v1/users/me", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile handlers.UserResponse
	decodeBody(t, resp, &profile)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, "Guest", profile.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthenticationRequired(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/users/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Available rooms stay public.
	resp = env.do(t, http.MethodGet, "/api/v1/rooms/available", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRoomManagementRequiresManager(t *testing.T) {
	env := newTestEnv(t)
	guest := env.tokenFor(t, domain.User{ID: "g1", Name: "Guest", Email: "g@x.com", Role: domain.RoleGuest})
	manager := env.tokenFor(t, domain.User{ID: "m1", Name: "Mgr", Email: "m@x.com", Role: domain.RoleManager})

	room := map[string]interface{}{"room_num": 101, "room_type": "Standard", "price": 2000}

	resp := env.do(t, http.MethodPost, "/api/v1/rooms", guest, room)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/rooms", manager, room)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created handlers.RoomResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, 101, created.Number)
	assert.True(t, created.IsAvailable)

	resp = env.do(t, http.MethodPost, "/api/v1/rooms", manager, room)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestBookingFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	guest := env.tokenFor(t, domain.User{ID: "g1", Name: "Guest", Email: "g@x.com", Role: domain.RoleGuest})
	manager := env.tokenFor(t, domain.User{ID: "m1", Name: "Mgr", Email: "m@x.com", Role: domain.RoleManager})

	resp := env.do(t, http.MethodPost, "/api/v1/rooms", manager, map[string]interface{}{
		"room_num": 204, "room_type": "Deluxe", "price": 3500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/bookings", guest, map[string]interface{}{
		"room_num": 204, "check_in": "2026-09-01", "check_out": "2026-09-04",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var booking handlers.BookingResponse
	decodeBody(t, resp, &booking)
	assert.Equal(t, "Booked", booking.Status)
	assert.Equal(t, "2026-09-01", booking.CheckIn)

	// Booked room is no longer bookable.
	resp = env.do(t, http.MethodPost, "/api/v1/bookings", guest, map[string]interface{}{
		"room_num": 204, "check_in": "2026-09-05", "check_out": "2026-09-06",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/bookings", guest, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []handlers.BookingResponse
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)

	resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/cancel", booking.ID), guest, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/bookings", guest, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	assert.Empty(t, list)
}

func TestServiceRequestFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	guest := env.tokenFor(t, domain.User{ID: "g1", Name: "Guest", Email: "g@x.com", Role: domain.RoleGuest})
	manager := env.tokenFor(t, domain.User{ID: "m1", Name: "Mgr", Email: "m@x.com", Role: domain.RoleManager})

	resp := env.do(t, http.MethodPost, "/api/v1/rooms", manager, map[string]interface{}{
		"room_num": 301, "room_type": "Suite", "price": 8000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/bookings", guest, map[string]interface{}{
		"room_num": 301, "check_in": "2026-09-01", "check_out": "2026-09-04",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/service-requests", guest, map[string]interface{}{
		"room_num": 301, "service_type": "Food", "details": "dinner",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var request handlers.ServiceRequestResponse
	decodeBody(t, resp, &request)
	assert.Equal(t, "Pending", request.Status)

	// A second food request on the same booking is rejected.
	resp = env.do(t, http.MethodPost, "/api/v1/service-requests", guest, map[string]interface{}{
		"room_num": 301, "service_type": "Food",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Only managers see the pending queue.
	resp = env.do(t, http.MethodGet, "/api/v1/service-requests/pending", guest, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/service-requests/pending", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pending []handlers.ServiceRequestResponse
	decodeBody(t, resp, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, request.ID, pending[0].ID)
}
