// Package handlers contains the HTTP handlers for the hotel API.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// UserResponse is the API shape of a user account.
type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsAvailable bool   `json:"is_available"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role.String(),
		IsAvailable: u.Available,
	}
}

// RoomResponse is the API shape of a room.
type RoomResponse struct {
	ID          string `json:"id"`
	Number      int    `json:"room_num"`
	Type        string `json:"room_type"`
	Price       int    `json:"price"`
	IsAvailable bool   `json:"is_available"`
	Description string `json:"description,omitempty"`
}

func toRoomResponse(r domain.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Type:        r.Type.String(),
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Description: r.Description,
	}
}

func toRoomResponses(rooms []domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out
}

// BookingResponse is the API shape of a booking. Dates use YYYY-MM-DD.
type BookingResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	RoomID   string `json:"room_id"`
	RoomNum  int    `json:"room_num"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
	FoodReq  bool   `json:"food_req"`
	CleanReq bool   `json:"clean_req"`
}

func toBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		UserID:   b.UserID,
		RoomID:   b.RoomID,
		RoomNum:  b.RoomNum,
		CheckIn:  b.CheckIn.Format(schema.DateFormat),
		CheckOut: b.CheckOut.Format(schema.DateFormat),
		Status:   b.Status.String(),
		FoodReq:  b.FoodReq,
		CleanReq: b.CleanReq,
	}
}

func toBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

// ServiceRequestResponse is the API shape of a service request.
type ServiceRequestResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	BookingID  string  `json:"booking_id"`
	RoomNum    int     `json:"room_num"`
	Type       string  `json:"service_type"`
	Status     string  `json:"status"`
	IsAssigned bool    `json:"is_assigned"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Details    string  `json:"details,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func toServiceRequestResponse(s domain.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		BookingID:  s.BookingID,
		RoomNum:    s.RoomNum,
		Type:       s.Type.String(),
		Status:     s.Status.String(),
		IsAssigned: s.IsAssigned,
		AssignedTo: s.AssignedTo,
		Details:    s.Details,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
}

func toServiceRequestResponses(requests []domain.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(requests))
	for _, s := range requests {
		out = append(out, toServiceRequestResponse(s))
	}
	return out
}

// FeedbackResponse is the API shape of a feedback entry.
type FeedbackResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Rating    *int   `json:"rating,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toFeedbackResponse(f domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func toFeedbackResponses(entries []domain.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(entries))
	for _, f := range entries {
		out = append(out, toFeedbackResponse(f))
	}
	return out
}
