package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
)

// IUserUseCase exposes the signup-side operations of the service. The gateway
// customer reference is never set here; it is provisioned lazily on the first
// payment.

type IUserUseCase interface {
	Register(ctx context.Context, username, email string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register creates a user. Signing up twice with the same email is not an
// error: the existing user is returned instead.
func (u *UserUseCase) Register(ctx context.Context, username, email string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrInvalidUsername
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return existing, nil
	}

	user := entities.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
