package challenge

import (
	"context"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/match"
)

// Filter narrows Query results. Zero values match everything.
type Filter struct {
	PlayerID string
	Status   Status
}

// Repository describes challenge persistence needs from use cases.
//
// Query returns challenges ordered by creation time descending, then id
// descending. AcceptWithMatch stores m and moves the challenge from pending to
// accepted in one atomic write; it reports false, writing nothing, when the
// challenge is no longer pending. Decline follows the same rule.
type Repository interface {
	GetByID(ctx context.Context, challengeID string) (Challenge, bool, error)
	Create(ctx context.Context, c Challenge) error
	Query(ctx context.Context, filter Filter) ([]Challenge, error)
	AcceptWithMatch(ctx context.Context, challengeID string, m match.Match, at time.Time) (Challenge, bool, error)
	Decline(ctx context.Context, challengeID string, message *string, at time.Time) (Challenge, bool, error)
}
