package repository

import (
	"errors"
	"sync"

	"go-auth-api/model"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordConflict  = errors.New("password changed concurrently")
)

// IUserRepository defines the contract for user identity storage.
type IUserRepository interface {
	Insert(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	UpdatePassword(username, expectedHash, newHash string) error
}

// UserRepository is an in-memory user store keyed by username. The id
// counter and the map live behind one mutex so the uniqueness check and
// the insert form a single critical section.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	nextID int
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*model.User)}
}

// Insert stores a new user and assigns its id. The username check runs
// before the email scan, so a record that collides on both fails with
// ErrDuplicateUsername. Callers must hash the password before calling;
// the store never holds plaintext.
func (r *UserRepository) Insert(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return ErrDuplicateUsername
	}
	// Linear scan; an email index would be the first change at real scale.
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	r.nextID++
	user.ID = r.nextID

	stored := *user
	r.users[user.Username] = &stored
	return nil
}

// FindByUsername returns a copy of the stored user, keeping record
// ownership inside the store.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// UpdatePassword swaps the stored password hash for a user. The caller
// passes the hash it verified the current password against; if the
// stored hash has moved since that read, the swap is refused with
// ErrPasswordConflict so a concurrent change is never silently
// overwritten.
func (r *UserRepository) UpdatePassword(username, expectedHash, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return ErrUserNotFound
	}
	if user.Password != expectedHash {
		return ErrPasswordConflict
	}

	user.Password = newHash
	return nil
}
