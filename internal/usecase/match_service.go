package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/platform/id"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

type ScheduleMatchInput struct {
	PlayerID   string    `validate:"required"`
	OpponentID string    `validate:"required"`
	Date       time.Time `validate:"required"`
	Location   string    `validate:"required"`
}

type RescheduleMatchInput struct {
	MatchID      string    `validate:"required"`
	ActingUserID string    `validate:"required"`
	Date         time.Time `validate:"required"`
	Location     string    `validate:"required"`
}

// MatchSummary is a match with both players' display names resolved.
type MatchSummary struct {
	Match       match.Match
	Player1Name string
	Player2Name string
}

type MatchService struct {
	matchRepo match.Repository
	userRepo  user.Repository
	idGen     id.Generator
	validate  *validator.Validate
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	userRepo user.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		idGen:     idGen,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// RecordScore completes a scheduled match. Checks run in order: the match
// exists, the actor plays in it, it is still scheduled, the score is legal.
func (s *MatchService) RecordScore(ctx context.Context, matchID, actingUserID string, player1Score, player2Score int) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordScore",
		attribute.String("match.id", matchID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	current, err := s.loadForParticipant(ctx, matchID, actingUserID)
	if err != nil {
		return match.Match{}, err
	}
	if current.Status != match.StatusScheduled {
		return match.Match{}, fmt.Errorf("%w: match %s is already %s", ErrInvalidState, current.ID, current.Status)
	}
	if err := match.ValidateScore(player1Score, player2Score); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	item, applied, err := s.matchRepo.CompleteScore(ctx, current.ID, player1Score, player2Score, s.now().UTC())
	if err != nil {
		return match.Match{}, storeFailure(err, "complete match score")
	}
	if !applied {
		return match.Match{}, fmt.Errorf("%w: match %s is no longer scheduled", ErrInvalidState, current.ID)
	}

	s.logger.InfoContext(ctx, "match score recorded",
		"match_id", item.ID,
		"player1_score", player1Score,
		"player2_score", player2Score,
		"recorded_by", strings.TrimSpace(actingUserID),
	)
	return item, nil
}

// Schedule creates a match directly, without a challenge. The acting player
// becomes player one.
func (s *MatchService) Schedule(ctx context.Context, input ScheduleMatchInput) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer func() { endUsecaseSpan(span, err) }()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.OpponentID = strings.TrimSpace(input.OpponentID)
	input.Location = strings.TrimSpace(input.Location)

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if input.PlayerID == input.OpponentID {
		return match.Match{}, fmt.Errorf("%w: players must be different", ErrInvalidInput)
	}

	names, err := lookupDisplayNames(ctx, s.userRepo, []string{input.PlayerID, input.OpponentID})
	if err != nil {
		return match.Match{}, err
	}
	for _, userID := range []string{input.PlayerID, input.OpponentID} {
		if _, ok := names[userID]; !ok {
			return match.Match{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item = match.Match{
		ID:        matchID,
		Player1ID: input.PlayerID,
		Player2ID: input.OpponentID,
		Date:      input.Date.UTC(),
		Location:  input.Location,
		Status:    match.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, storeFailure(err, "create match")
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"match_id", item.ID,
		"player1_id", item.Player1ID,
		"player2_id", item.Player2ID,
	)
	return item, nil
}

// Reschedule moves a scheduled match to a new date and location. Only its
// players may do so, and completed matches are frozen.
func (s *MatchService) Reschedule(ctx context.Context, input RescheduleMatchInput) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Reschedule",
		attribute.String("match.id", input.MatchID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.ActingUserID = strings.TrimSpace(input.ActingUserID)
	input.Location = strings.TrimSpace(input.Location)

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	current, err := s.loadForParticipant(ctx, input.MatchID, input.ActingUserID)
	if err != nil {
		return match.Match{}, err
	}
	if current.Status != match.StatusScheduled {
		return match.Match{}, fmt.Errorf("%w: match %s is already %s", ErrInvalidState, current.ID, current.Status)
	}

	item, applied, err := s.matchRepo.Reschedule(ctx, current.ID, input.Date.UTC(), input.Location, s.now().UTC())
	if err != nil {
		return match.Match{}, storeFailure(err, "reschedule match")
	}
	if !applied {
		return match.Match{}, fmt.Errorf("%w: match %s is no longer scheduled", ErrInvalidState, current.ID)
	}

	s.logger.InfoContext(ctx, "match rescheduled", "match_id", item.ID)
	return item, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, storeFailure(err, "get match by id")
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return item, nil
}

// ListForPlayer returns every match the player is in, newest first.
func (s *MatchService) ListForPlayer(ctx context.Context, playerID string) ([]MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListForPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.Query(ctx, match.Filter{PlayerID: playerID})
	if err != nil {
		return nil, storeFailure(err, "query matches for player")
	}

	ids := make([]string, 0, len(items)*2)
	for _, item := range items {
		ids = append(ids, item.Player1ID, item.Player2ID)
	}
	names, err := lookupDisplayNames(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	out := make([]MatchSummary, 0, len(items))
	for _, item := range items {
		out = append(out, MatchSummary{
			Match:       item,
			Player1Name: names[item.Player1ID],
			Player2Name: names[item.Player2ID],
		})
	}
	return out, nil
}

func (s *MatchService) loadForParticipant(ctx context.Context, matchID, actingUserID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	actingUserID = strings.TrimSpace(actingUserID)
	if matchID == "" || actingUserID == "" {
		return match.Match{}, fmt.Errorf("%w: match id and acting user are required", ErrInvalidInput)
	}

	current, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, storeFailure(err, "get match by id")
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	if !current.IsParticipant(actingUserID) {
		return match.Match{}, fmt.Errorf("%w: user %s does not play in match %s", ErrForbidden, actingUserID, matchID)
	}

	return current, nil
}
