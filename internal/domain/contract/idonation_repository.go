package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// IDonationRepository provides methods for managing donation records.
// Listing methods return donations in unspecified order; callers sort.
type IDonationRepository interface {
	// CreateDonation persists a new donation with status pending.
	CreateDonation(ctx context.Context, donation *entity.Donation) error
	// GetDonationByID retrieves a donation by ID. Fails with entity.ErrDonationNotFound.
	GetDonationByID(ctx context.Context, id string) (*entity.Donation, error)
	// ListAll returns every stored donation.
	ListAll(ctx context.Context) ([]*entity.Donation, error)
	// ListByDonorEmail returns donations whose donor snapshot email matches.
	ListByDonorEmail(ctx context.Context, email string) ([]*entity.Donation, error)
	// ListByTypes returns donations whose type is in the given set.
	ListByTypes(ctx context.Context, types []entity.DonationType) ([]*entity.Donation, error)
	// MarkCollected atomically transitions a pending donation to collected,
	// stamping the collector snapshot and collection time. Fails with
	// entity.ErrDonationNotFound for an absent ID and entity.ErrAlreadyCollected
	// when the donation was already collected. Under concurrent calls for the
	// same ID at most one caller succeeds.
	MarkCollected(ctx context.Context, id string, collector entity.CollectorSnapshot, at time.Time) (*entity.Donation, error)
}
