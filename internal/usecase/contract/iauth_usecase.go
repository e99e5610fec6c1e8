package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// IAuthUseCase defines the interface for account and session operations.
type IAuthUseCase interface {
	// Signup registers a new account. No session token is issued; a separate
	// login step is required.
	Signup(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error)
	// Login verifies the credentials for (email, role) and issues a bearer
	// token. A correct email with the wrong role fails exactly like an
	// unknown user.
	Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error)
	// Authenticate resolves a raw Authorization header value to a registered
	// user. Fails with entity.ErrUnauthenticated on any missing, malformed or
	// unresolvable token.
	Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
