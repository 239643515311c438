package usecase

import (
	"context"
	"errors"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
)

// Guard answers role capability checks for gated operations.
type Guard struct {
	users UserStore
}

func NewGuard(users UserStore) *Guard {
	return &Guard{users: users}
}

// IsAdmin fails closed: an unknown user is not an admin.
func (g *Guard) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}
