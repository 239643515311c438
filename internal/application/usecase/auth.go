package usecase

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
)

// UserStore is the slice of the user repository the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthUseCase struct {
	users UserStore
}

func NewAuthUseCase(users UserStore) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Login looks the user up by phone and refreshes last_login. No token
// is issued; callers authenticate follow-up requests with the returned
// user id.
func (uc *AuthUseCase) Login(ctx context.Context, phone string) (*domain.User, error) {
	user, err := uc.users.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if err := uc.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

// Register creates a student account. This is the only path that
// creates identities; the role is never caller-controlled.
func (uc *AuthUseCase) Register(ctx context.Context, phone, fullName string) (*domain.User, error) {
	if _, err := uc.users.GetByPhone(ctx, phone); err == nil {
		return nil, domain.ErrUserAlreadyExists
	}

	user := &domain.User{
		Phone:    phone,
		FullName: fullName,
		Role:     domain.RoleStudent,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
