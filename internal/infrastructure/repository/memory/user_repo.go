package memory

import (
	"context"
	"sync"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// UserRepository is the mutex-guarded in-memory user store. All state is
// volatile and resets on process restart.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

// check if UserRepository implements contract.IUserRepository at compile time
var _ contract.IUserRepository = (*UserRepository)(nil)

// CreateUser persists a new user, enforcing email uniqueness under the write
// lock. Email comparison is case-sensitive with no normalization.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return entity.ErrDuplicateEmail
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return nil
}

// GetUserByID retrieves a user by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmailAndRole retrieves a user matching both email and role. A
// correct email with the wrong role is indistinguishable from an unknown user.
func (r *UserRepository) GetUserByEmailAndRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok || user.Role != role {
		return nil, entity.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}
