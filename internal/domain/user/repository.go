package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByIDs(ctx context.Context, userIDs []string) ([]User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) error
}
