package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
)

var (
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrForeignKeyMissing = errors.New("referenced record does not exist")
)

// Store keeps users, matches and challenges behind one lock so that a
// challenge acceptance and its match insert are applied together. Use the
// repository views returned by Users, Matches and Challenges.
type Store struct {
	mu         sync.RWMutex
	users      map[string]user.User
	userOrder  []string
	matches    map[string]match.Match
	challenges map[string]challenge.Challenge
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]user.User),
		matches:    make(map[string]match.Match),
		challenges: make(map[string]challenge.Challenge),
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{store: s}
}

func (s *Store) Challenges() *ChallengeRepository {
	return &ChallengeRepository{store: s}
}

// requireUsers must be called with s.mu held.
func (s *Store) requireUsers(userIDs ...string) error {
	for _, userID := range userIDs {
		if _, ok := s.users[userID]; !ok {
			return fmt.Errorf("%w: user %s", ErrForeignKeyMissing, userID)
		}
	}
	return nil
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
