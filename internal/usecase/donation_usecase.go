package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// DonationUsecase implements the donation lifecycle: submission, the role-based
// feeds and the single pending -> collected transition.
type DonationUsecase struct {
	donationRepo contract.IDonationRepository
	idGenerator  contract.IIDGenerator
	logger       usecasecontract.IAppLogger
	cache        contract.IDonationCache
}

// NewDonationUsecase creates a new DonationUsecase instance.
func NewDonationUsecase(
	donationRepo contract.IDonationRepository,
	idGenerator contract.IIDGenerator,
	logger usecasecontract.IAppLogger,
) *DonationUsecase {
	return &DonationUsecase{
		donationRepo: donationRepo,
		idGenerator:  idGenerator,
		logger:       logger,
	}
}

// check if DonationUsecase implements the IDonationUseCase
var _ usecasecontract.IDonationUseCase = (*DonationUsecase)(nil)

// SetDonationCache wires an optional cache for the pending feeds.
func (uc *DonationUsecase) SetDonationCache(cache contract.IDonationCache) {
	uc.cache = cache
}

// Create submits a new donation on behalf of the donor.
func (uc *DonationUsecase) Create(ctx context.Context, donor *entity.User, input usecasecontract.DonationInput) (*entity.Donation, error) {
	if donor.Role != entity.UserRoleDonor {
		return nil, entity.ErrForbidden
	}
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid donation type", entity.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", entity.ErrValidation)
	}
	if input.PeopleFed != nil && *input.PeopleFed <= 0 {
		return nil, fmt.Errorf("%w: peopleFed must be positive", entity.ErrValidation)
	}
	if input.QuantityKg != nil && *input.QuantityKg <= 0 {
		return nil, fmt.Errorf("%w: quantityKg must be positive", entity.ErrValidation)
	}

	donation := &entity.Donation{
		ID:         uc.idGenerator.NewID(),
		Donor:      donor.Snapshot(),
		Type:       input.Type,
		PeopleFed:  input.PeopleFed,
		QuantityKg: input.QuantityKg,
		Location:   input.Location,
		Status:     entity.DonationStatusPending,
		Timestamp:  time.Now(),
	}

	if err := uc.donationRepo.CreateDonation(ctx, donation); err != nil {
		uc.logger.Errorf("failed to create donation: %v", err)
		return nil, fmt.Errorf("failed to create donation")
	}

	metrics.DonationCreated(string(donation.Type))
	uc.invalidateFeeds(ctx)

	return donation, nil
}

// ListMine returns the donor's own donations, newest first. Ownership follows
// the donor snapshot email, matching the submission-time identity.
func (uc *DonationUsecase) ListMine(ctx context.Context, donor *entity.User) ([]*entity.Donation, error) {
	if donor.Role != entity.UserRoleDonor {
		return nil, entity.ErrForbidden
	}

	donations, err := uc.donationRepo.ListByDonorEmail(ctx, donor.Email)
	if err != nil {
		uc.logger.Errorf("failed to list donations for %s: %v", donor.Email, err)
		return nil, fmt.Errorf("failed to list donations")
	}

	sortNewestFirst(donations)
	return donations, nil
}

// ListPending returns the pending feed for a collector, newest first.
func (uc *DonationUsecase) ListPending(ctx context.Context, collector *entity.User) ([]*entity.Donation, error) {
	if !collector.Role.IsCollector() {
		return nil, entity.ErrForbidden
	}

	if uc.cache != nil {
		if page, ok, err := uc.cache.GetPendingFeed(ctx, collector.Role); err != nil {
			uc.logger.Warnf("pending feed cache read failed: %v", err)
		} else if ok {
			return pageToDonations(page), nil
		}
	}

	donations, err := uc.donationRepo.ListByTypes(ctx, collector.Role.VisibleTypes())
	if err != nil {
		uc.logger.Errorf("failed to list pending donations: %v", err)
		return nil, fmt.Errorf("failed to list donations")
	}

	sortNewestFirst(donations)

	if uc.cache != nil {
		if err := uc.cache.SetPendingFeed(ctx, collector.Role, donationsToPage(donations)); err != nil {
			uc.logger.Warnf("pending feed cache write failed: %v", err)
		}
	}

	return donations, nil
}

// ListVisible returns every donation the caller's role may see, newest first.
// Donors see their own submissions; collectors see their matching types.
func (uc *DonationUsecase) ListVisible(ctx context.Context, user *entity.User) ([]*entity.Donation, error) {
	var (
		donations []*entity.Donation
		err       error
	)
	switch {
	case user.Role == entity.UserRoleDonor:
		donations, err = uc.donationRepo.ListByDonorEmail(ctx, user.Email)
	case user.Role.IsCollector():
		donations, err = uc.donationRepo.ListByTypes(ctx, user.Role.VisibleTypes())
	default:
		return nil, entity.ErrForbidden
	}
	if err != nil {
		uc.logger.Errorf("failed to list donations for role %s: %v", user.Role, err)
		return nil, fmt.Errorf("failed to list donations")
	}

	sortNewestFirst(donations)
	return donations, nil
}

// Collect transitions a donation to collected on behalf of a collector.
func (uc *DonationUsecase) Collect(ctx context.Context, collector *entity.User, donationID string) (*entity.Donation, error) {
	if !collector.Role.IsCollector() {
		return nil, entity.ErrForbidden
	}

	donation, err := uc.donationRepo.GetDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if !collector.Role.CanCollect(donation.Type) {
		return nil, entity.ErrForbidden
	}

	collected, err := uc.donationRepo.MarkCollected(ctx, donationID, collector.CollectorSnapshot(), time.Now())
	if err != nil {
		return nil, err
	}

	metrics.DonationCollected(string(collected.Type), string(collector.Role))
	uc.invalidateFeeds(ctx)

	return collected, nil
}

func (uc *DonationUsecase) invalidateFeeds(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidatePendingFeeds(ctx); err != nil {
		uc.logger.Warnf("pending feed cache invalidation failed: %v", err)
	}
}

func sortNewestFirst(donations []*entity.Donation) {
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].Timestamp.After(donations[j].Timestamp)
	})
}

func donationsToPage(donations []*entity.Donation) *contract.CachedDonationsPage {
	page := &contract.CachedDonationsPage{Donations: make([]entity.Donation, 0, len(donations))}
	for _, d := range donations {
		page.Donations = append(page.Donations, *d)
	}
	return page
}

func pageToDonations(page *contract.CachedDonationsPage) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(page.Donations))
	for i := range page.Donations {
		donations = append(donations, &page.Donations[i])
	}
	return donations
}
