package mocks

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	SignupErr       error
	LoginErr        error
	AuthenticateErr error

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockAuthUsecase implements the correct interface for handler.NewAuthHandler
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRoleDonor,
		},
		MockToken: "token_mock-user-id_1700000000000",
	}
}

func (m *MockAuthUsecase) Signup(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	if m.SignupErr != nil {
		return nil, m.SignupErr
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error) {
	if m.LoginErr != nil {
		return nil, "", m.LoginErr
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	if m.AuthenticateErr != nil {
		return nil, m.AuthenticateErr
	}
	return &m.MockUser, nil
}
