package contract

// IHasher abstracts password hashing so usecases stay free of the bcrypt import.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
