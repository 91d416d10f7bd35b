package cache

import (
	"context"
	"slices"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/user"
	basecache "github.com/gdogra/tennisconnect/internal/platform/cache"
)

const (
	userListKey     = "user:list"
	userByIDKeyPref = "user:id:"
)

// UserRepository is a read-through cache over a user.Repository. Users are
// read on every challenge, match and statistics call but change rarely.
// Create invalidates the affected keys.
type UserRepository struct {
	next user.Repository
	list *basecache.Store[[]user.User]
	byID *basecache.Store[userLookup]
}

// userLookup remembers misses too, so unknown ids do not hit the store again
// until the entry expires.
type userLookup struct {
	value  user.User
	exists bool
}

func NewUserRepository(next user.Repository, ttl time.Duration) *UserRepository {
	return &UserRepository{
		next: next,
		list: basecache.New[[]user.User](ttl),
		byID: basecache.New[userLookup](ttl),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	items, err := r.list.Load(ctx, userListKey, r.next.List)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	found, err := r.byID.Load(ctx, userByIDKeyPref+userID, func(ctx context.Context) (userLookup, error) {
		item, exists, err := r.next.GetByID(ctx, userID)
		return userLookup{value: item, exists: exists}, err
	})
	if err != nil {
		return user.User{}, false, err
	}
	return found.value, found.exists, nil
}

// GetByIDs serves each id through the per-user cache and keeps input order.
func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	out := make([]user.User, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}

		item, exists, err := r.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if exists {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.list.Invalidate(userListKey)
	r.byID.Invalidate(userByIDKeyPref + item.ID)
	return nil
}
