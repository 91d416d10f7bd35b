package match

import (
	"context"
	"time"
)

// Filter narrows Query results. Zero values match everything.
type Filter struct {
	PlayerID string
	Status   Status
}

// Repository describes match persistence needs from use cases.
//
// Query returns matches ordered by date descending, then id ascending.
// CompleteScore and Reschedule only touch a match that is still scheduled and
// report false when it is not.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Query(ctx context.Context, filter Filter) ([]Match, error)
	CompleteScore(ctx context.Context, matchID string, player1Score, player2Score int, at time.Time) (Match, bool, error)
	Reschedule(ctx context.Context, matchID string, date time.Time, location string, at time.Time) (Match, bool, error)
}
