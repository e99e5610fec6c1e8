package usecase

import (
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// Issue produces a bearer token for the user.
	Issue(user *entity.User) (string, error)
	// Decode extracts the user ID embedded in a token. Fails with
	// entity.ErrInvalidToken when the token is malformed.
	Decode(token string) (string, error)
}
