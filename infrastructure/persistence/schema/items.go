package schema

import (
	"errors"
	"fmt"
	"time"

	"letstayinn-backend/domain"
)

// ErrCorruptRecord reports a stored item that cannot be decoded into a valid
// entity. Decoders wrap it with the offending field.
var ErrCorruptRecord = errors.New("corrupt record")

// DateFormat is the wire format of check-in/check-out dates.
const DateFormat = "2006-01-02"

func corrupt(field, detail string) error {
	return fmt.Errorf("%w: %s %s", ErrCorruptRecord, field, detail)
}

// UserItem is the stored shape of a user or employee profile.
type UserItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Password  string `dynamodbav:"password"`
	Role      string `dynamodbav:"role"`
	Available bool   `dynamodbav:"available"`
}

// EncodeUserProfile maps a user to its canonical profile item.
func EncodeUserProfile(u domain.User) UserItem {
	return UserItem{
		PK:        UserPK(u.ID),
		SK:        ProfileSK,
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Available: u.Available,
	}
}

// EncodeEmployeeRosterEntry maps an employee to its roster copy. The payload
// matches the profile so roster listings need no second read.
func EncodeEmployeeRosterEntry(u domain.User) UserItem {
	it := EncodeUserProfile(u)
	it.PK = EmployeePK
	it.SK = EmployeeSK(u.ID)
	return it
}

// DecodeUser validates a stored profile or roster item into a user.
func DecodeUser(it UserItem) (domain.User, error) {
	if it.ID == "" {
		return domain.User{}, corrupt("id", "missing")
	}
	if it.Email == "" {
		return domain.User{}, corrupt("email", "missing")
	}
	role, err := domain.ParseRole(it.Role)
	if err != nil {
		return domain.User{}, corrupt("role", fmt.Sprintf("%q unknown", it.Role))
	}
	return domain.User{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Password:  it.Password,
		Role:      role,
		Available: it.Available,
	}, nil
}

// EmailItem claims an email address for a user id. Its existence is the
// uniqueness invariant; writes condition on it being absent.
type EmailItem struct {
	PK     string `dynamodbav:"pk"`
	SK     string `dynamodbav:"sk"`
	UserID string `dynamodbav:"user_id"`
}

// EncodeEmailPointer maps an email claim to its item.
func EncodeEmailPointer(email, userID string) EmailItem {
	return EmailItem{PK: EmailPK(email), SK: EmailSK, UserID: userID}
}

// DecodeEmailPointer validates an email claim item.
func DecodeEmailPointer(it EmailItem) (string, error) {
	if it.UserID == "" {
		return "", corrupt("user_id", "missing")
	}
	return it.UserID, nil
}

// RoomItem is the stored shape of a room.
type RoomItem struct {
	PK          string `dynamodbav:"pk"`
	SK          string `dynamodbav:"sk"`
	ID          string `dynamodbav:"id"`
	Number      int    `dynamodbav:"room_number"`
	Type        string `dynamodbav:"room_type"`
	Price       int    `dynamodbav:"price"`
	IsAvailable bool   `dynamodbav:"is_available"`
	Description string `dynamodbav:"description"`
}

// EncodeRoom maps a room to its item in the ROOMS partition.
func EncodeRoom(r domain.Room) RoomItem {
	return RoomItem{
		PK:          RoomsPK,
		SK:          RoomSK(r.Number),
		ID:          r.ID,
		Number:      r.Number,
		Type:        string(r.Type),
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Description: r.Description,
	}
}

// DecodeRoom validates a stored room item.
func DecodeRoom(it RoomItem) (domain.Room, error) {
	if it.ID == "" {
		return domain.Room{}, corrupt("id", "missing")
	}
	if it.Number <= 0 {
		return domain.Room{}, corrupt("room_number", "missing or non-positive")
	}
	typ, err := domain.ParseRoomType(it.Type)
	if err != nil {
		return domain.Room{}, corrupt("room_type", fmt.Sprintf("%q unknown", it.Type))
	}
	return domain.Room{
		ID:          it.ID,
		Number:      it.Number,
		Type:        typ,
		Price:       it.Price,
		IsAvailable: it.IsAvailable,
		Description: it.Description,
	}, nil
}

// BookingItem is the stored shape of both booking copies. The canonical copy
// and the per-user view carry the same payload and differ only in keys.
type BookingItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	ID       string `dynamodbav:"id"`
	UserID   string `dynamodbav:"user_id"`
	RoomID   string `dynamodbav:"room_id"`
	RoomNum  int    `dynamodbav:"room_number"`
	CheckIn  string `dynamodbav:"check_in"`
	CheckOut string `dynamodbav:"check_out"`
	Status   string `dynamodbav:"status"`
	FoodReq  bool   `dynamodbav:"food_req"`
	CleanReq bool   `dynamodbav:"clean_req"`
}

func encodeBooking(b domain.Booking) BookingItem {
	return BookingItem{
		ID:       b.ID,
		UserID:   b.UserID,
		RoomID:   b.RoomID,
		RoomNum:  b.RoomNum,
		CheckIn:  b.CheckIn.Format(DateFormat),
		CheckOut: b.CheckOut.Format(DateFormat),
		Status:   string(b.Status),
		FoodReq:  b.FoodReq,
		CleanReq: b.CleanReq,
	}
}

// EncodeBookingMeta maps a booking to its canonical copy.
func EncodeBookingMeta(b domain.Booking) BookingItem {
	it := encodeBooking(b)
	it.PK = BookingPK(b.ID)
	it.SK = BookingMetaSK
	return it
}

// EncodeBookingUserView maps a booking to its per-user view copy.
func EncodeBookingUserView(b domain.Booking) BookingItem {
	it := encodeBooking(b)
	it.PK = UserPK(b.UserID)
	it.SK = UserBookingSK(b.ID)
	return it
}

// DecodeBooking validates either stored booking copy.
func DecodeBooking(it BookingItem) (domain.Booking, error) {
	if it.ID == "" {
		return domain.Booking{}, corrupt("id", "missing")
	}
	if it.UserID == "" {
		return domain.Booking{}, corrupt("user_id", "missing")
	}
	status, err := domain.ParseBookingStatus(it.Status)
	if err != nil {
		return domain.Booking{}, corrupt("status", fmt.Sprintf("%q unknown", it.Status))
	}
	checkIn, err := time.Parse(DateFormat, it.CheckIn)
	if err != nil {
		return domain.Booking{}, corrupt("check_in", fmt.Sprintf("%q not a date", it.CheckIn))
	}
	checkOut, err := time.Parse(DateFormat, it.CheckOut)
	if err != nil {
		return domain.Booking{}, corrupt("check_out", fmt.Sprintf("%q not a date", it.CheckOut))
	}
	return domain.Booking{
		ID:       it.ID,
		UserID:   it.UserID,
		RoomID:   it.RoomID,
		RoomNum:  it.RoomNum,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
		FoodReq:  it.FoodReq,
		CleanReq: it.CleanReq,
	}, nil
}

// ServiceRequestItem is the stored shape of every service request copy: the
// global queue item, the requester's view and the assignee's view.
type ServiceRequestItem struct {
	PK         string  `dynamodbav:"pk"`
	SK         string  `dynamodbav:"sk"`
	ID         string  `dynamodbav:"id"`
	UserID     string  `dynamodbav:"user_id"`
	BookingID  string  `dynamodbav:"booking_id"`
	RoomNum    int     `dynamodbav:"room_number"`
	Type       string  `dynamodbav:"service_type"`
	Status     string  `dynamodbav:"status"`
	IsAssigned bool    `dynamodbav:"is_assigned"`
	AssignedTo *string `dynamodbav:"assigned_to"`
	Details    string  `dynamodbav:"details"`
	CreatedAt  string  `dynamodbav:"created_at"`
}

func encodeServiceRequest(s domain.ServiceRequest) ServiceRequestItem {
	return ServiceRequestItem{
		ID:         s.ID,
		UserID:     s.UserID,
		BookingID:  s.BookingID,
		RoomNum:    s.RoomNum,
		Type:       string(s.Type),
		Status:     string(s.Status),
		IsAssigned: s.IsAssigned,
		AssignedTo: s.AssignedTo,
		Details:    s.Details,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// EncodeServiceQueue maps a request to its global-queue copy.
func EncodeServiceQueue(s domain.ServiceRequest) ServiceRequestItem {
	it := encodeServiceRequest(s)
	it.PK = ServiceRequestsPK
	it.SK = ServiceQueueSK(s.Status, s.ID)
	return it
}

// EncodeServiceMade maps a request to the requester's view copy.
func EncodeServiceMade(s domain.ServiceRequest) ServiceRequestItem {
	it := encodeServiceRequest(s)
	it.PK = UserPK(s.UserID)
	it.SK = ServiceMadeSK(s.Status, s.ID)
	return it
}

// EncodeServiceAssigned maps a request to the assignee's view copy.
// The request must already carry the assignee.
func EncodeServiceAssigned(s domain.ServiceRequest, employeeID string) ServiceRequestItem {
	it := encodeServiceRequest(s)
	it.PK = UserPK(employeeID)
	it.SK = ServiceQueueSK(s.Status, s.ID)
	return it
}

// DecodeServiceRequest validates any stored service request copy.
func DecodeServiceRequest(it ServiceRequestItem) (domain.ServiceRequest, error) {
	if it.ID == "" {
		return domain.ServiceRequest{}, corrupt("id", "missing")
	}
	if it.UserID == "" {
		return domain.ServiceRequest{}, corrupt("user_id", "missing")
	}
	typ, err := domain.ParseServiceType(it.Type)
	if err != nil {
		return domain.ServiceRequest{}, corrupt("service_type", fmt.Sprintf("%q unknown", it.Type))
	}
	status, err := domain.ParseServiceStatus(it.Status)
	if err != nil {
		return domain.ServiceRequest{}, corrupt("status", fmt.Sprintf("%q unknown", it.Status))
	}
	if it.IsAssigned && it.AssignedTo == nil {
		return domain.ServiceRequest{}, corrupt("assigned_to", "missing on assigned request")
	}
	createdAt, err := time.Parse(time.RFC3339, it.CreatedAt)
	if err != nil {
		return domain.ServiceRequest{}, corrupt("created_at", fmt.Sprintf("%q not a timestamp", it.CreatedAt))
	}
	return domain.ServiceRequest{
		ID:         it.ID,
		UserID:     it.UserID,
		BookingID:  it.BookingID,
		RoomNum:    it.RoomNum,
		Type:       typ,
		Status:     status,
		IsAssigned: it.IsAssigned,
		AssignedTo: it.AssignedTo,
		Details:    it.Details,
		CreatedAt:  createdAt,
	}, nil
}

// FeedbackItem is the stored shape of a feedback entry.
type FeedbackItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	UserName  string `dynamodbav:"user_name"`
	Message   string `dynamodbav:"message"`
	Rating    *int   `dynamodbav:"rating"`
	CreatedAt string `dynamodbav:"created_at"`
}

// EncodeFeedback maps a feedback entry to its item.
func EncodeFeedback(f domain.Feedback) FeedbackItem {
	return FeedbackItem{
		PK:        FeedbacksPK,
		SK:        FeedbackSK(f.ID),
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// DecodeFeedback validates a stored feedback item.
func DecodeFeedback(it FeedbackItem) (domain.Feedback, error) {
	if it.ID == "" {
		return domain.Feedback{}, corrupt("id", "missing")
	}
	if it.UserID == "" {
		return domain.Feedback{}, corrupt("user_id", "missing")
	}
	createdAt, err := time.Parse(time.RFC3339, it.CreatedAt)
	if err != nil {
		return domain.Feedback{}, corrupt("created_at", fmt.Sprintf("%q not a timestamp", it.CreatedAt))
	}
	return domain.Feedback{
		ID:        it.ID,
		UserID:    it.UserID,
		UserName:  it.UserName,
		Message:   it.Message,
		Rating:    it.Rating,
		CreatedAt: createdAt,
	}, nil
}
