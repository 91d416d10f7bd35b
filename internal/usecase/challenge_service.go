package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/platform/id"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

type CreateChallengeInput struct {
	ChallengerID     string    `validate:"required"`
	ChallengedID     string    `validate:"required"`
	ProposedAt       time.Time `validate:"required"`
	ProposedLocation string    `validate:"required"`
	Message          *string
}

type ListChallengesFilter struct {
	PendingOnly bool
}

// ChallengeSummary is a challenge with both parties' display names resolved.
type ChallengeSummary struct {
	Challenge      challenge.Challenge
	ChallengerName string
	ChallengedName string
}

type ChallengeService struct {
	challengeRepo challenge.Repository
	userRepo      user.Repository
	idGen         id.Generator
	validate      *validator.Validate
	logger        *logging.Logger
	now           func() time.Time
}

func NewChallengeService(
	challengeRepo challenge.Repository,
	userRepo user.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *ChallengeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChallengeService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		idGen:         idGen,
		validate:      validator.New(),
		logger:        logger,
		now:           time.Now,
	}
}

func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (item challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Create")
	defer func() { endUsecaseSpan(span, err) }()

	input.ChallengerID = strings.TrimSpace(input.ChallengerID)
	input.ChallengedID = strings.TrimSpace(input.ChallengedID)
	input.ProposedLocation = strings.TrimSpace(input.ProposedLocation)
	input.Message = normalizeMessage(input.Message)

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if input.ChallengerID == input.ChallengedID {
		return challenge.Challenge{}, fmt.Errorf("%w: players cannot challenge themselves", ErrInvalidInput)
	}

	now := s.now().UTC()
	if input.ProposedAt.Before(now) {
		return challenge.Challenge{}, fmt.Errorf("%w: proposed time %s is in the past", ErrInvalidInput, input.ProposedAt.UTC().Format(time.RFC3339))
	}

	if err := s.ensureUsersExist(ctx, input.ChallengerID, input.ChallengedID); err != nil {
		return challenge.Challenge{}, err
	}

	challengeID, err := s.idGen.NewID()
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("generate challenge id: %w", err)
	}

	item = challenge.Challenge{
		ID:               challengeID,
		ChallengerID:     input.ChallengerID,
		ChallengedID:     input.ChallengedID,
		ProposedAt:       input.ProposedAt.UTC(),
		ProposedLocation: input.ProposedLocation,
		Message:          input.Message,
		Status:           challenge.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := item.Validate(); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.challengeRepo.Create(ctx, item); err != nil {
		return challenge.Challenge{}, storeFailure(err, "create challenge")
	}

	s.logger.InfoContext(ctx, "challenge created",
		"challenge_id", item.ID,
		"challenger_id", item.ChallengerID,
		"challenged_id", item.ChallengedID,
	)
	return item, nil
}

// Accept turns a pending challenge into a scheduled match. The match insert
// and the status change are written together; when another caller wins the
// race the loser gets ErrInvalidState and nothing is written.
func (s *ChallengeService) Accept(ctx context.Context, challengeID, actingUserID string) (item challenge.Challenge, created match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Accept",
		attribute.String("challenge.id", challengeID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	current, err := s.loadForResponse(ctx, challengeID, actingUserID)
	if err != nil {
		return challenge.Challenge{}, match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return challenge.Challenge{}, match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	created = match.Match{
		ID:        matchID,
		Player1ID: current.ChallengerID,
		Player2ID: current.ChallengedID,
		Date:      current.ProposedAt,
		Location:  current.ProposedLocation,
		Status:    match.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := created.Validate(); err != nil {
		return challenge.Challenge{}, match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	item, applied, err := s.challengeRepo.AcceptWithMatch(ctx, current.ID, created, now)
	if err != nil {
		return challenge.Challenge{}, match.Match{}, storeFailure(err, "accept challenge")
	}
	if !applied {
		return challenge.Challenge{}, match.Match{}, fmt.Errorf("%w: challenge %s is no longer pending", ErrInvalidState, current.ID)
	}

	s.logger.InfoContext(ctx, "challenge accepted",
		"challenge_id", item.ID,
		"match_id", created.ID,
	)
	return item, created, nil
}

// Decline closes a pending challenge. The reason replaces any earlier message;
// a nil reason clears it.
func (s *ChallengeService) Decline(ctx context.Context, challengeID, actingUserID string, reason *string) (item challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Decline",
		attribute.String("challenge.id", challengeID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	current, err := s.loadForResponse(ctx, challengeID, actingUserID)
	if err != nil {
		return challenge.Challenge{}, err
	}

	item, applied, err := s.challengeRepo.Decline(ctx, current.ID, normalizeMessage(reason), s.now().UTC())
	if err != nil {
		return challenge.Challenge{}, storeFailure(err, "decline challenge")
	}
	if !applied {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge %s is no longer pending", ErrInvalidState, current.ID)
	}

	s.logger.InfoContext(ctx, "challenge declined", "challenge_id", item.ID)
	return item, nil
}

func (s *ChallengeService) Get(ctx context.Context, challengeID string) (challenge.Challenge, error) {
	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}

	item, exists, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, storeFailure(err, "get challenge by id")
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge %s", ErrNotFound, challengeID)
	}
	return item, nil
}

// ListForPlayer returns the challenges the player sent or received, newest
// first. Nothing is read until the sequence is ranged over, and every range
// queries the store again. A failure is yielded once as the final element.
func (s *ChallengeService) ListForPlayer(ctx context.Context, playerID string, filter ListChallengesFilter) iter.Seq2[ChallengeSummary, error] {
	playerID = strings.TrimSpace(playerID)

	return func(yield func(ChallengeSummary, error) bool) {
		if playerID == "" {
			yield(ChallengeSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput))
			return
		}

		query := challenge.Filter{PlayerID: playerID}
		if filter.PendingOnly {
			query.Status = challenge.StatusPending
		}

		items, err := s.challengeRepo.Query(ctx, query)
		if err != nil {
			yield(ChallengeSummary{}, storeFailure(err, "query challenges for player"))
			return
		}

		names, err := lookupDisplayNames(ctx, s.userRepo, challengeParticipantIDs(items))
		if err != nil {
			yield(ChallengeSummary{}, err)
			return
		}

		for _, item := range items {
			summary := ChallengeSummary{
				Challenge:      item,
				ChallengerName: names[item.ChallengerID],
				ChallengedName: names[item.ChallengedID],
			}
			if !yield(summary, nil) {
				return
			}
		}
	}
}

// loadForResponse runs the checks shared by accept and decline: the challenge
// exists, the actor is the challenged player, and it is still pending.
func (s *ChallengeService) loadForResponse(ctx context.Context, challengeID, actingUserID string) (challenge.Challenge, error) {
	challengeID = strings.TrimSpace(challengeID)
	actingUserID = strings.TrimSpace(actingUserID)
	if challengeID == "" || actingUserID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id and acting user are required", ErrInvalidInput)
	}

	current, exists, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, storeFailure(err, "get challenge by id")
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge %s", ErrNotFound, challengeID)
	}
	if current.ChallengedID != actingUserID {
		return challenge.Challenge{}, fmt.Errorf("%w: only the challenged player can respond to challenge %s", ErrForbidden, challengeID)
	}
	if current.Status != challenge.StatusPending {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge %s is %s", ErrInvalidState, challengeID, current.Status)
	}

	return current, nil
}

func (s *ChallengeService) ensureUsersExist(ctx context.Context, userIDs ...string) error {
	found, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return storeFailure(err, "get users by ids")
	}

	known := make(map[string]struct{}, len(found))
	for _, u := range found {
		known[u.ID] = struct{}{}
	}
	for _, userID := range userIDs {
		if _, ok := known[userID]; !ok {
			return fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
	}
	return nil
}

func challengeParticipantIDs(items []challenge.Challenge) []string {
	out := make([]string, 0, len(items)*2)
	for _, item := range items {
		out = append(out, item.ChallengerID, item.ChallengedID)
	}
	return out
}

func lookupDisplayNames(ctx context.Context, userRepo user.Repository, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	unique := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok || userID == "" {
			continue
		}
		seen[userID] = struct{}{}
		unique = append(unique, userID)
	}

	users, err := userRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, storeFailure(err, "get users by ids")
	}
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names, nil
}

func normalizeMessage(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
