package user

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

// DefaultBcryptCost matches the cost the service has always hashed with.
const DefaultBcryptCost = 12

type UseCase struct {
	users  repository.UserRepository
	cost   int
	logger *zap.Logger
}

func New(users repository.UserRepository, bcryptCost int, logger *zap.Logger) *UseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		cost:   bcryptCost,
		logger: logger,
	}
}

// Create registers a new user. The email uniqueness pre-check runs before
// any row is written; a concurrent insert that slips past it is caught by
// the unique index and surfaces as a duplicate error.
func (uc *UseCase) Create(ctx context.Context, email, password, name string) (*domain.User, error) {
	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, err
	}

	created, err := uc.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user created", zap.Int64("user_id", created.ID))
	return created, nil
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

func (uc *UseCase) List(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error) {
	return uc.users.List(ctx, params)
}

// Update applies a partial update. When the email changes, the new address
// must not belong to another user; keeping the current email is allowed,
// which requires reading the row before writing.
func (uc *UseCase) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
	if upd.Email != nil && *upd.Email != "" {
		exists, err := uc.users.EmailExists(ctx, *upd.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			current, err := uc.users.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if current.Email != *upd.Email {
				return nil, domain.ErrEmailTaken
			}
		}
	}

	updated, err := uc.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user updated", zap.Int64("user_id", id))
	return updated, nil
}

func (uc *UseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info("user deleted", zap.Int64("user_id", id))
	}
	return deleted, nil
}
