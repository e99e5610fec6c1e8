package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// DonationRepository is the mutex-guarded in-memory donation store. A single
// store mutex serializes every mutation, so concurrent MarkCollected calls on
// the same donation admit exactly one winner.
type DonationRepository struct {
	mu   sync.RWMutex
	byID map[string]*entity.Donation
}

// NewDonationRepository creates an empty in-memory donation store.
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{
		byID: make(map[string]*entity.Donation),
	}
}

// check if DonationRepository implements contract.IDonationRepository at compile time
var _ contract.IDonationRepository = (*DonationRepository)(nil)

// CreateDonation persists a new donation.
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *donation
	r.byID[stored.ID] = &stored
	return nil
}

// GetDonationByID retrieves a donation by ID.
func (r *DonationRepository) GetDonationByID(ctx context.Context, id string) (*entity.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	donation, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrDonationNotFound
	}
	copied := *donation
	return &copied, nil
}

// ListAll returns every stored donation in unspecified order.
func (r *DonationRepository) ListAll(ctx context.Context) ([]*entity.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	donations := make([]*entity.Donation, 0, len(r.byID))
	for _, d := range r.byID {
		copied := *d
		donations = append(donations, &copied)
	}
	return donations, nil
}

// ListByDonorEmail returns donations whose donor snapshot email matches.
func (r *DonationRepository) ListByDonorEmail(ctx context.Context, email string) ([]*entity.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var donations []*entity.Donation
	for _, d := range r.byID {
		if d.Donor.Email == email {
			copied := *d
			donations = append(donations, &copied)
		}
	}
	return donations, nil
}

// ListByTypes returns donations whose type is in the given set.
func (r *DonationRepository) ListByTypes(ctx context.Context, types []entity.DonationType) ([]*entity.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[entity.DonationType]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	var donations []*entity.Donation
	for _, d := range r.byID {
		if _, ok := wanted[d.Type]; ok {
			copied := *d
			donations = append(donations, &copied)
		}
	}
	return donations, nil
}

// MarkCollected atomically transitions a pending donation to collected.
func (r *DonationRepository) MarkCollected(ctx context.Context, id string, collector entity.CollectorSnapshot, at time.Time) (*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrDonationNotFound
	}
	if donation.Status == entity.DonationStatusCollected {
		return nil, entity.ErrAlreadyCollected
	}

	donation.Status = entity.DonationStatusCollected
	donation.Collector = &collector
	collectedAt := at
	donation.CollectedAt = &collectedAt

	copied := *donation
	return &copied, nil
}
