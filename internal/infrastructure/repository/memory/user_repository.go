package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdogra/tennisconnect/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	existing, ok := r.store.users[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return existing, true, nil
}

func (r *UserRepository) GetByIDs(_ context.Context, userIDs []string) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]user.User, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		if existing, ok := r.store.users[userID]; ok {
			out = append(out, existing)
		}
	}
	return out, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]user.User, 0, len(r.store.userOrder))
	for _, userID := range r.store.userOrder {
		out = append(out, r.store.users[userID])
	}
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate user: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[item.ID]; exists {
		return fmt.Errorf("%w: user id %s", ErrDuplicateKey, item.ID)
	}
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, item.Email) {
			return fmt.Errorf("%w: user email %s", ErrDuplicateKey, item.Email)
		}
	}

	r.store.users[item.ID] = item
	r.store.userOrder = append(r.store.userOrder, item.ID)
	return nil
}
