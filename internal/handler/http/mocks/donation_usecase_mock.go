package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// MockDonationUsecase is a mock implementation of the IDonationUseCase interface
type MockDonationUsecase struct {
	// Control mock behavior
	CreateErr      error
	ListMineErr    error
	ListPendingErr error
	ListVisibleErr error
	CollectErr     error

	// Return values
	MockDonation  entity.Donation
	MockDonations []*entity.Donation
}

// Ensure MockDonationUsecase implements the correct interface for handler.NewDonationHandler
var _ usecasecontract.IDonationUseCase = (*MockDonationUsecase)(nil)

func NewMockDonationUsecase() *MockDonationUsecase {
	donation := entity.Donation{
		ID: "1700000000001",
		Donor: entity.UserSnapshot{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
		},
		Type:      entity.DonationTypeFresh,
		Location:  "Main St",
		Status:    entity.DonationStatusPending,
		Timestamp: time.Now(),
	}
	return &MockDonationUsecase{
		MockDonation:  donation,
		MockDonations: []*entity.Donation{&donation},
	}
}

func (m *MockDonationUsecase) Create(ctx context.Context, donor *entity.User, input usecasecontract.DonationInput) (*entity.Donation, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &m.MockDonation, nil
}

func (m *MockDonationUsecase) ListMine(ctx context.Context, donor *entity.User) ([]*entity.Donation, error) {
	if m.ListMineErr != nil {
		return nil, m.ListMineErr
	}
	return m.MockDonations, nil
}

func (m *MockDonationUsecase) ListPending(ctx context.Context, collector *entity.User) ([]*entity.Donation, error) {
	if m.ListPendingErr != nil {
		return nil, m.ListPendingErr
	}
	return m.MockDonations, nil
}

func (m *MockDonationUsecase) ListVisible(ctx context.Context, user *entity.User) ([]*entity.Donation, error) {
	if m.ListVisibleErr != nil {
		return nil, m.ListVisibleErr
	}
	return m.MockDonations, nil
}

func (m *MockDonationUsecase) Collect(ctx context.Context, collector *entity.User, donationID string) (*entity.Donation, error) {
	if m.CollectErr != nil {
		return nil, m.CollectErr
	}
	return &m.MockDonation, nil
}
