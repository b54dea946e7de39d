package dynamodb

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

const conditionItemAbsent = "attribute_not_exists(pk)"
const conditionItemExists = "attribute_exists(pk)"

// UserRepository persists guest accounts: a profile item plus an email claim
// item whose existence enforces email uniqueness.
type UserRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewUserRepository creates a user repository.
func NewUserRepository(store *Store, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: logger.Named("user-repo"),
	}
}

// Save creates the profile and the email claim in one transaction. Both legs
// require absence, so a taken email leaves nothing behind.
func (r *UserRepository) Save(ctx context.Context, user domain.User) error {
	profile, err := r.store.PutLegIf(schema.EncodeUserProfile(user), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving user")
	}
	email, err := r.store.PutLegIf(schema.EncodeEmailPointer(user.Email, user.ID), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving user")
	}

	if err := r.store.TransactWrite(ctx, profile, email); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewConflictError("email already registered").WithCode("DUPLICATE_EMAIL")
		}
		return storageError(err, "saving user")
	}

	r.logger.Info("user created", zap.String("user_id", user.ID))
	return nil
}

// GetByID reads a user profile.
func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var item schema.UserItem
	if err := r.store.Get(ctx, schema.UserPK(id), schema.ProfileSK, &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, appErrors.NewNotFoundError("user")
		}
		return domain.User{}, storageError(err, "reading user")
	}
	user, err := schema.DecodeUser(item)
	if err != nil {
		return domain.User{}, appErrors.NewCorruptRecordError("user", err)
	}
	return user, nil
}

// GetByEmail resolves the email claim to a user id and reads the profile.
// The profile read is strongly consistent: the id was just resolved, and a
// stale replica would turn a live account into a spurious not-found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var claim schema.EmailItem
	if err := r.store.Get(ctx, schema.EmailPK(email), schema.EmailSK, &claim); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, appErrors.NewNotFoundError("user")
		}
		return domain.User{}, storageError(err, "resolving email")
	}
	userID, err := schema.DecodeEmailPointer(claim)
	if err != nil {
		return domain.User{}, appErrors.NewCorruptRecordError("email claim", err)
	}

	var item schema.UserItem
	if err := r.store.GetConsistent(ctx, schema.UserPK(userID), schema.ProfileSK, &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, appErrors.NewNotFoundError("user")
		}
		return domain.User{}, storageError(err, "reading user")
	}
	user, err := schema.DecodeUser(item)
	if err != nil {
		return domain.User{}, appErrors.NewCorruptRecordError("user", err)
	}
	return user, nil
}
