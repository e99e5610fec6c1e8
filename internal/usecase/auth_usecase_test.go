package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/idgen"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/FoodBridge/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/token"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/validator"
	"github.com/mikiasgoitom/FoodBridge/internal/usecase"
)

func newAuthUsecase() (*usecase.AuthUsecase, *memory.UserRepository) {
	userRepo := memory.NewUserRepository()
	uc := usecase.NewAuthUsecase(
		userRepo,
		passwordservice.NewHasher(),
		token.NewLegacyCodec(),
		idgen.NewGenerator(),
		validator.NewValidator(),
		logger.NewStdLogger(),
	)
	return uc, userRepo
}

func TestSignupThenLogin(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	created, err := uc.Signup(ctx, "John Donor", "donor@test.com", "password123", entity.UserRoleDonor)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "password123", created.PasswordHash)

	user, tok, err := uc.Login(ctx, "donor@test.com", "password123", entity.UserRoleDonor)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// The issued token authenticates back to the same user.
	authenticated, err := uc.Authenticate(ctx, "Bearer "+tok)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, authenticated.ID)
}

func TestSignupValidation(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, "John", "not-an-email", "password123", entity.UserRoleDonor)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.Signup(ctx, "John", "john@test.com", "short", entity.UserRoleDonor)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = uc.Signup(ctx, "John", "john@test.com", "password123", entity.UserRole("admin"))
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, "John", "dup@test.com", "password123", entity.UserRoleDonor)
	assert.NoError(t, err)

	// Rejected regardless of role or password.
	_, err = uc.Signup(ctx, "Jane", "dup@test.com", "different-pass", entity.UserRoleNGO)
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestLoginWrongRoleOrPassword(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, "John", "donor@test.com", "password123", entity.UserRoleDonor)
	assert.NoError(t, err)

	// Wrong role for a correct email is treated identically to an unknown user.
	_, _, err = uc.Login(ctx, "donor@test.com", "password123", entity.UserRoleNGO)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, _, err = uc.Login(ctx, "donor@test.com", "wrong-password", entity.UserRoleDonor)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, _, err = uc.Login(ctx, "nobody@test.com", "password123", entity.UserRoleDonor)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, "John", "donor@test.com", "password123", entity.UserRoleDonor)
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed token", "Bearer not-a-token"},
		{"wrong part count", "Bearer token_1"},
		{"unknown user id", "Bearer token_999_1700000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Authenticate(ctx, tt.header)
			assert.ErrorIs(t, err, entity.ErrUnauthenticated)
		})
	}
}
