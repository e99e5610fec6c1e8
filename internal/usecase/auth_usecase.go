package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

const bearerPrefix = "Bearer "

// AuthUsecase implements signup, login and bearer authentication.
type AuthUsecase struct {
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService TokenService
	idGenerator  contract.IIDGenerator
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	idGenerator contract.IIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		idGenerator:  idGenerator,
		validator:    validator,
		logger:       logger,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Signup registers a new account with a bcrypt-hashed password.
func (uc *AuthUsecase) Signup(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", entity.ErrValidation)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           uc.idGenerator.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if err == entity.ErrDuplicateEmail {
			return nil, entity.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	return user, nil
}

// Login verifies the credentials for (email, role) and issues a bearer token.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error) {
	// A correct email with the wrong role must be indistinguishable from an
	// unknown user, so lookup is by the pair.
	user, err := uc.userRepo.GetUserByEmailAndRole(ctx, email, role)
	if err != nil {
		if err == entity.ErrUserNotFound {
			return nil, "", entity.ErrUnauthenticated
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("internal server error")
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrUnauthenticated
	}

	token, err := uc.tokenService.Issue(user)
	if err != nil {
		uc.logger.Errorf("failed to issue token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user, token, nil
}

// Authenticate resolves an Authorization header to a registered user.
func (uc *AuthUsecase) Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, entity.ErrUnauthenticated
	}

	token := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	userID, err := uc.tokenService.Decode(token)
	if err != nil {
		return nil, entity.ErrUnauthenticated
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		// The token embeds an ID the store no longer knows; treat it like any
		// other bad credential.
		return nil, entity.ErrUnauthenticated
	}

	return user, nil
}
