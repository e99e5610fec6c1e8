package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase IValidator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePassword checks the minimum password requirements.
func (av *AppValidator) ValidatePassword(password string) error {
	return av.validate.Var(password, "required,min=6")
}

// RegisterCustomValidators registers domain validation functions with the Gin
// binding validator, usable as `binding:"userrole"` / `binding:"donationtype"`.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("userrole", isUserRole)
		v.RegisterValidation("donationtype", isDonationType)
	}
}

func isUserRole(fl validator.FieldLevel) bool {
	return entity.UserRole(fl.Field().String()).IsValid()
}

func isDonationType(fl validator.FieldLevel) bool {
	return entity.DonationType(fl.Field().String()).IsValid()
}
