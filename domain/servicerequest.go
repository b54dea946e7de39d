package domain

import (
	"fmt"
	"time"
)

// ServiceType is the kind of in-room service a guest can request.
type ServiceType string

const (
	ServiceCleaning ServiceType = "Cleaning"
	ServiceFood     ServiceType = "Food"
)

// ParseServiceType converts a stored string back into a ServiceType.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceCleaning, ServiceFood:
		return ServiceType(s), nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

func (t ServiceType) String() string { return string(t) }

// ServiceStatus is the lifecycle state of a service request. The status is
// embedded in the request's sort keys, so a transition means deleting the
// old items and writing new ones rather than updating in place.
type ServiceStatus string

const (
	ServicePending ServiceStatus = "Pending"
	ServiceDone    ServiceStatus = "Done"
)

// ParseServiceStatus converts a stored string back into a ServiceStatus.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	switch ServiceStatus(s) {
	case ServicePending, ServiceDone:
		return ServiceStatus(s), nil
	}
	return "", fmt.Errorf("unknown service status %q", s)
}

func (s ServiceStatus) String() string { return string(s) }

// ServiceRequest is a cleaning or food request raised against a booking.
// It is stored under three keys at most: the global queue, the requester's
// partition, and (once assigned) the assignee's partition.
type ServiceRequest struct {
	ID         string
	UserID     string
	BookingID  string
	RoomNum    int
	Type       ServiceType
	Status     ServiceStatus
	IsAssigned bool
	AssignedTo *string // nil until assigned
	Details    string
	CreatedAt  time.Time
}
