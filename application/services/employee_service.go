package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
)

// EmployeeService handles staff account administration.
type EmployeeService struct {
	employees ports.EmployeeRepository
	logger    *zap.Logger
}

// NewEmployeeService creates an employee service.
func NewEmployeeService(employees ports.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		logger:    logger.Named("employee-service"),
	}
}

// Create registers a staff account. Guests cannot be created here; the role
// must be a staff role. New employees start available.
func (s *EmployeeService) Create(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	if !role.IsEmployee() {
		return domain.User{}, appErrors.NewValidationError("invalid role for employee")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, appErrors.NewInternalError("hashing password").WithCause(err)
	}

	employee := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  hash,
		Role:      role,
		Available: true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return domain.User{}, err
	}
	return employee, nil
}

// List returns the staff roster.
func (s *EmployeeService) List(ctx context.Context) ([]domain.User, error) {
	return s.employees.List(ctx)
}

// UpdateAvailability marks an employee available or busy.
func (s *EmployeeService) UpdateAvailability(ctx context.Context, employeeID string, available bool) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	employee.Available = available
	return s.employees.Update(ctx, employee)
}

// Delete removes a staff account. The employee is read first so the email
// claim can be deleted along with the profile and roster copies.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	return s.employees.Delete(ctx, employee)
}
