package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// DonationInput carries the caller-supplied fields of a new donation.
type DonationInput struct {
	Type       entity.DonationType
	PeopleFed  *int
	QuantityKg *float64
	Location   string
}

// IDonationUseCase defines the interface for donation lifecycle operations.
type IDonationUseCase interface {
	// Create submits a new donation on behalf of the donor. The donor identity
	// is embedded as an immutable snapshot.
	Create(ctx context.Context, donor *entity.User, input DonationInput) (*entity.Donation, error)
	// ListMine returns the donor's own donations, newest first.
	ListMine(ctx context.Context, donor *entity.User) ([]*entity.Donation, error)
	// ListPending returns the pending feed for a collector role, newest first.
	ListPending(ctx context.Context, collector *entity.User) ([]*entity.Donation, error)
	// ListVisible returns every donation the caller's role may see, newest
	// first: donors see their own submissions, collectors their matching types.
	ListVisible(ctx context.Context, user *entity.User) ([]*entity.Donation, error)
	// Collect transitions a donation to collected on behalf of an eligible
	// collector. Fails with entity.ErrDonationNotFound, entity.ErrForbidden or
	// entity.ErrAlreadyCollected.
	Collect(ctx context.Context, collector *entity.User, donationID string) (*entity.Donation, error)
}
