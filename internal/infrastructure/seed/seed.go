package seed

import (
	"context"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// demoPassword is shared by all demo accounts.
const demoPassword = "password123"

var demoAccounts = []entity.User{
	{ID: "1", Name: "John Donor", Email: "donor@test.com", Role: entity.UserRoleDonor},
	{ID: "2", Name: "Jane NGO", Email: "ngo@test.com", Role: entity.UserRoleNGO},
	{ID: "3", Name: "Bob Biogas", Email: "biogas@test.com", Role: entity.UserRoleBiogas},
}

// DemoAccounts seeds the three fixed demo accounts, one per role. Passwords
// are stored bcrypt-hashed exactly like signup-created accounts, so the demo
// users can log in through the regular hash-checking path. Accounts that
// already exist are left untouched.
func DemoAccounts(ctx context.Context, userRepo contract.IUserRepository, hasher contract.IHasher, logger usecasecontract.IAppLogger) error {
	hash, err := hasher.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	for _, account := range demoAccounts {
		user := account
		user.PasswordHash = hash
		user.CreatedAt = time.Now()

		if err := userRepo.CreateUser(ctx, &user); err != nil {
			if err == entity.ErrDuplicateEmail {
				continue
			}
			return err
		}
		logger.Infof("seeded demo account %s (%s)", user.Email, user.Role)
	}
	return nil
}
