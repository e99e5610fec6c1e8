package contract

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser persists a new user. Fails with entity.ErrDuplicateEmail when
	// another user already holds the same email (case-sensitive).
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user by ID. Fails with entity.ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email. Fails with entity.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByEmailAndRole retrieves a user matching both email and role.
	// A correct email with the wrong role fails with entity.ErrUserNotFound.
	GetUserByEmailAndRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error)
}
