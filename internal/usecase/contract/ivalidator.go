package usecasecontract

// IValidator exposes input validation to the usecase layer.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}
