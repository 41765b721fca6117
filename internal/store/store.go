// Package store owns the in-memory user records of the route marketplace:
// each user's named route collections, moderation ban state and achievement
// progress. All other packages go through it rather than holding their own
// copies. Locking is per user, so operations on different users never block
// each other; the registry lock only guards the nickname map itself.
package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// userEntry pairs a user record with its own mutex. Mutating operations hold
// the mutex for their full duration, including collection id allocation.
type userEntry struct {
	mu   sync.Mutex
	user User
}

// Store is the authoritative registry of user records, keyed by nickname.
type Store struct {
	mu    sync.RWMutex
	users map[string]*userEntry

	// now is swapped out by tests to simulate the passage of time.
	now func() time.Time
}

// NewStore creates and initializes an empty Store.
func NewStore() *Store {
	log.Info("Initializing user store")
	return &Store{
		users: make(map[string]*userEntry),
		now:   time.Now,
	}
}

// CreateUser registers a new user under the given nickname.
// It returns ErrUserAlreadyExists if the nickname is taken.
func (s *Store) CreateUser(nickname string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[nickname]; exists {
		return User{}, ErrUserAlreadyExists
	}

	entry := &userEntry{
		user: User{
			Nickname:  nickname,
			CreatedAt: s.now(),
		},
	}
	s.users[nickname] = entry

	return entry.user.clone(), nil
}

// GetUser returns a snapshot of the user record and whether it exists.
// Absence is a normal branch, not an error.
func (s *Store) GetUser(nickname string) (User, bool) {
	entry := s.lookup(nickname)
	if entry == nil {
		return User{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.user.clone(), true
}

// GetUserCollections returns a snapshot of the user's collections, or an
// empty slice if the user does not exist.
func (s *Store) GetUserCollections(nickname string) []Collection {
	entry := s.lookup(nickname)
	if entry == nil {
		return []Collection{}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return cloneCollections(entry.user.Collections)
}

// UserCount returns the number of registered users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// lookup fetches the entry for a nickname under the registry read lock.
// The caller is responsible for taking the entry's own mutex.
func (s *Store) lookup(nickname string) *userEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[nickname]
}
