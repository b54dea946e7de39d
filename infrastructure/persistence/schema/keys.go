// Package schema is the entity codec for the single-table layout: it derives
// partition/sort keys, maps entities to flat items and back, and enumerates
// the fan-out copies a write must produce. It performs no I/O.
//
// Key layout:
//
//	User#<id>        / PROFILE            user or employee profile (canonical)
//	Email#<email>    / USER               email -> user id uniqueness index
//	Employee         / Employee#<id>      employee roster (manager listing)
//	ROOMS            / room#<number>      all rooms in one partition
//	Booking#<id>     / META               booking canonical copy
//	User#<user_id>   / booking#<id>       booking per-user view
//	ServiceRequests  / Service#<status>#<id>   global service queue
//	User#<user_id>   / Made#<status>#<id>      requester's own view
//	User#<emp_id>    / Service#<status>#<id>   assignee's view
//	Feedbacks        / Feedback#<id>      all feedback in one partition
package schema

import (
	"fmt"

	"letstayinn-backend/domain"
)

// Attribute names of the composite primary key.
const (
	AttrPK = "pk"
	AttrSK = "sk"
)

// Fixed partition and sort key values.
const (
	ProfileSK         = "PROFILE"
	EmailSK           = "USER"
	EmployeePK        = "Employee"
	RoomsPK           = "ROOMS"
	BookingMetaSK     = "META"
	ServiceRequestsPK = "ServiceRequests"
	FeedbacksPK       = "Feedbacks"
)

// UserPK returns the partition key of a user's profile and views.
func UserPK(userID string) string {
	return "User#" + userID
}

// EmailPK returns the partition key of the email uniqueness item.
func EmailPK(email string) string {
	return "Email#" + email
}

// EmployeeSK returns the roster sort key for an employee.
func EmployeeSK(employeeID string) string {
	return "Employee#" + employeeID
}

// RoomSK returns the sort key of a room within the ROOMS partition.
func RoomSK(number int) string {
	return fmt.Sprintf("room#%d", number)
}

// RoomSKPrefix is the begins_with prefix selecting every room.
const RoomSKPrefix = "room#"

// BookingPK returns the partition key of a booking's canonical copy.
func BookingPK(bookingID string) string {
	return "Booking#" + bookingID
}

// UserBookingSK returns the per-user view sort key of a booking.
func UserBookingSK(bookingID string) string {
	return "booking#" + bookingID
}

// UserBookingSKPrefix is the begins_with prefix selecting a user's bookings.
const UserBookingSKPrefix = "booking#"

// ServiceQueueSK returns the global-queue sort key of a service request.
// The status is embedded, so a status transition replaces the item.
func ServiceQueueSK(status domain.ServiceStatus, requestID string) string {
	return fmt.Sprintf("Service#%s#%s", status, requestID)
}

// ServiceQueueSKPrefix returns the begins_with prefix selecting queue items
// in a given status. The same prefix selects an employee's assigned view.
func ServiceQueueSKPrefix(status domain.ServiceStatus) string {
	return fmt.Sprintf("Service#%s#", status)
}

// ServiceMadeSK returns the requester-view sort key of a service request.
func ServiceMadeSK(status domain.ServiceStatus, requestID string) string {
	return fmt.Sprintf("Made#%s#%s", status, requestID)
}

// ServiceMadeSKPrefix returns the begins_with prefix selecting a requester's
// own service requests in a given status.
func ServiceMadeSKPrefix(status domain.ServiceStatus) string {
	return fmt.Sprintf("Made#%s#", status)
}

// FeedbackSK returns the sort key of a feedback entry.
func FeedbackSK(feedbackID string) string {
	return "Feedback#" + feedbackID
}

// FeedbackSKPrefix is the begins_with prefix selecting all feedback.
const FeedbackSKPrefix = "Feedback#"
