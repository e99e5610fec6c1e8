package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/idgen"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/logger"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/FoodBridge/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

var (
	donor  = &entity.User{ID: "1", Name: "John Donor", Email: "donor@test.com", Role: entity.UserRoleDonor}
	ngo    = &entity.User{ID: "2", Name: "Jane NGO", Email: "ngo@test.com", Role: entity.UserRoleNGO}
	biogas = &entity.User{ID: "3", Name: "Bob Biogas", Email: "biogas@test.com", Role: entity.UserRoleBiogas}
)

func newDonationUsecase() *usecase.DonationUsecase {
	return usecase.NewDonationUsecase(
		memory.NewDonationRepository(),
		idgen.NewGenerator(),
		logger.NewStdLogger(),
	)
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func freshInput() usecasecontract.DonationInput {
	return usecasecontract.DonationInput{
		Type:      entity.DonationTypeFresh,
		PeopleFed: intPtr(10),
		Location:  "Main St",
	}
}

func TestCreateDonation(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	donation, err := uc.Create(ctx, donor, freshInput())
	assert.NoError(t, err)
	assert.Equal(t, entity.DonationStatusPending, donation.Status)
	assert.Nil(t, donation.Collector)
	assert.Nil(t, donation.CollectedAt)
	assert.Equal(t, 10, *donation.PeopleFed)
	assert.Nil(t, donation.QuantityKg)
	assert.Equal(t, donor.Email, donation.Donor.Email)
	assert.WithinDuration(t, time.Now(), donation.Timestamp, time.Second)
}

func TestCreateDonationRejections(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, ngo, freshInput())
	assert.ErrorIs(t, err, entity.ErrForbidden)

	input := freshInput()
	input.Type = "plastic"
	_, err = uc.Create(ctx, donor, input)
	assert.ErrorIs(t, err, entity.ErrValidation)

	input = freshInput()
	input.Location = ""
	_, err = uc.Create(ctx, donor, input)
	assert.ErrorIs(t, err, entity.ErrValidation)

	input = freshInput()
	input.PeopleFed = intPtr(0)
	_, err = uc.Create(ctx, donor, input)
	assert.ErrorIs(t, err, entity.ErrValidation)

	input = freshInput()
	input.QuantityKg = floatPtr(-2)
	_, err = uc.Create(ctx, donor, input)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestListMineNewestFirst(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	first, err := uc.Create(ctx, donor, freshInput())
	assert.NoError(t, err)
	second, err := uc.Create(ctx, donor, usecasecontract.DonationInput{
		Type:       entity.DonationTypeOrganic,
		QuantityKg: floatPtr(5),
		Location:   "Market",
	})
	assert.NoError(t, err)

	donations, err := uc.ListMine(ctx, donor)
	assert.NoError(t, err)
	assert.Len(t, donations, 2)
	assert.False(t, donations[0].Timestamp.Before(donations[1].Timestamp))
	assert.Equal(t, second.ID, donations[0].ID)
	assert.Equal(t, first.ID, donations[1].ID)

	_, err = uc.ListMine(ctx, ngo)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestListPendingFiltersByRole(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, donor, usecasecontract.DonationInput{Type: entity.DonationTypePacked, PeopleFed: intPtr(4), Location: "A"})
	assert.NoError(t, err)
	_, err = uc.Create(ctx, donor, usecasecontract.DonationInput{Type: entity.DonationTypeFresh, PeopleFed: intPtr(8), Location: "B"})
	assert.NoError(t, err)
	_, err = uc.Create(ctx, donor, usecasecontract.DonationInput{Type: entity.DonationTypeOrganic, QuantityKg: floatPtr(3), Location: "C"})
	assert.NoError(t, err)

	edible, err := uc.ListPending(ctx, ngo)
	assert.NoError(t, err)
	assert.Len(t, edible, 2)
	for _, d := range edible {
		assert.NotEqual(t, entity.DonationTypeOrganic, d.Type)
	}

	organic, err := uc.ListPending(ctx, biogas)
	assert.NoError(t, err)
	assert.Len(t, organic, 1)
	assert.Equal(t, entity.DonationTypeOrganic, organic[0].Type)

	_, err = uc.ListPending(ctx, donor)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestListVisiblePerRole(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	otherDonor := &entity.User{ID: "4", Name: "Ann", Email: "ann@test.com", Role: entity.UserRoleDonor}
	_, err := uc.Create(ctx, donor, freshInput())
	assert.NoError(t, err)
	_, err = uc.Create(ctx, otherDonor, usecasecontract.DonationInput{Type: entity.DonationTypeOrganic, QuantityKg: floatPtr(2), Location: "D"})
	assert.NoError(t, err)

	// Donors see only their own submissions.
	mine, err := uc.ListVisible(ctx, donor)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, donor.Email, mine[0].Donor.Email)

	// Collectors see their matching types regardless of donor.
	organic, err := uc.ListVisible(ctx, biogas)
	assert.NoError(t, err)
	assert.Len(t, organic, 1)
	assert.Equal(t, entity.DonationTypeOrganic, organic[0].Type)
}

func TestCollect(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	donation, err := uc.Create(ctx, donor, freshInput())
	assert.NoError(t, err)

	collected, err := uc.Collect(ctx, ngo, donation.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.DonationStatusCollected, collected.Status)
	assert.Equal(t, ngo.Email, collected.Collector.Email)
	assert.Equal(t, entity.UserRoleNGO, collected.Collector.Role)
	assert.NotNil(t, collected.CollectedAt)

	// Second collection attempt fails and leaves the record unchanged.
	_, err = uc.Collect(ctx, ngo, donation.ID)
	assert.ErrorIs(t, err, entity.ErrAlreadyCollected)
}

func TestCollectMatchingRules(t *testing.T) {
	uc := newDonationUsecase()
	ctx := context.Background()

	fresh, err := uc.Create(ctx, donor, freshInput())
	assert.NoError(t, err)
	organic, err := uc.Create(ctx, donor, usecasecontract.DonationInput{Type: entity.DonationTypeOrganic, QuantityKg: floatPtr(3), Location: "C"})
	assert.NoError(t, err)

	// An NGO cannot collect organic waste.
	_, err = uc.Collect(ctx, ngo, organic.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// A biogas agent cannot collect fresh food.
	_, err = uc.Collect(ctx, biogas, fresh.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// A biogas agent collecting organic waste succeeds.
	collected, err := uc.Collect(ctx, biogas, organic.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.DonationStatusCollected, collected.Status)

	// Donors cannot collect at all.
	_, err = uc.Collect(ctx, donor, fresh.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestCollectNotFound(t *testing.T) {
	uc := newDonationUsecase()

	_, err := uc.Collect(context.Background(), ngo, "missing")
	assert.ErrorIs(t, err, entity.ErrDonationNotFound)
}
