package dynamodb

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

// EmployeeRepository persists staff accounts. An employee owns three items:
// the profile, the email claim and a roster copy under the Employee
// partition so managers can list staff without scanning.
type EmployeeRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewEmployeeRepository creates an employee repository.
func NewEmployeeRepository(store *Store, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		store:  store,
		logger: logger.Named("employee-repo"),
	}
}

// Create writes the profile, email claim and roster copy in one transaction,
// each requiring absence.
func (r *EmployeeRepository) Create(ctx context.Context, employee domain.User) error {
	profile, err := r.store.PutLegIf(schema.EncodeUserProfile(employee), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "creating employee")
	}
	email, err := r.store.PutLegIf(schema.EncodeEmailPointer(employee.Email, employee.ID), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "creating employee")
	}
	roster, err := r.store.PutLegIf(schema.EncodeEmployeeRosterEntry(employee), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "creating employee")
	}

	if err := r.store.TransactWrite(ctx, profile, email, roster); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewConflictError("email already registered").WithCode("DUPLICATE_EMAIL")
		}
		return storageError(err, "creating employee")
	}

	r.logger.Info("employee created",
		zap.String("employee_id", employee.ID),
		zap.String("role", string(employee.Role)))
	return nil
}

// GetByID reads an employee profile.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var item schema.UserItem
	if err := r.store.Get(ctx, schema.UserPK(id), schema.ProfileSK, &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, appErrors.NewNotFoundError("employee")
		}
		return domain.User{}, storageError(err, "reading employee")
	}
	employee, err := schema.DecodeUser(item)
	if err != nil {
		return domain.User{}, appErrors.NewCorruptRecordError("employee", err)
	}
	if !employee.Role.IsEmployee() {
		return domain.User{}, appErrors.NewNotFoundError("employee")
	}
	return employee, nil
}

// List returns the full staff roster.
func (r *EmployeeRepository) List(ctx context.Context) ([]domain.User, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.EmployeePK, "Employee#", nil)
	if err != nil {
		return nil, storageError(err, "listing employees")
	}
	return decodeAll(raw, "employee", schema.DecodeUser)
}

// Update rewrites the profile and roster copies in one transaction, both
// guarded on existence so the copies cannot diverge.
func (r *EmployeeRepository) Update(ctx context.Context, employee domain.User) error {
	profile, err := r.store.PutLegIf(schema.EncodeUserProfile(employee), conditionItemExists, nil, nil)
	if err != nil {
		return storageError(err, "updating employee")
	}
	roster, err := r.store.PutLegIf(schema.EncodeEmployeeRosterEntry(employee), conditionItemExists, nil, nil)
	if err != nil {
		return storageError(err, "updating employee")
	}

	if err := r.store.TransactWrite(ctx, profile, roster); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewNotFoundError("employee")
		}
		return storageError(err, "updating employee")
	}
	return nil
}

// Delete removes the profile, email claim and roster copy in one
// transaction. Every leg is guarded on existence so a half-deleted employee
// cannot result.
func (r *EmployeeRepository) Delete(ctx context.Context, employee domain.User) error {
	profile := r.store.DeleteLegIf(schema.UserPK(employee.ID), schema.ProfileSK, conditionItemExists, nil, nil)
	email := r.store.DeleteLegIf(schema.EmailPK(employee.Email), schema.EmailSK, conditionItemExists, nil, nil)
	roster := r.store.DeleteLegIf(schema.EmployeePK, schema.EmployeeSK(employee.ID), conditionItemExists, nil, nil)

	if err := r.store.TransactWrite(ctx, profile, email, roster); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewNotFoundError("employee")
		}
		return storageError(err, "deleting employee")
	}

	r.logger.Info("employee deleted", zap.String("employee_id", employee.ID))
	return nil
}
