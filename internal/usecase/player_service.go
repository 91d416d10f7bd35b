package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/platform/id"
	"github.com/gdogra/tennisconnect/internal/platform/logging"
)

type RegisterPlayerInput struct {
	DisplayName string `validate:"required,max=80"`
	Email       string `validate:"required,email"`
	Role        user.Role
}

// PlayerService registers accounts and looks them up. Credentials are
// handled elsewhere.
type PlayerService struct {
	userRepo user.Repository
	idGen    id.Generator
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewPlayerService(userRepo user.Repository, idGen id.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		userRepo: userRepo,
		idGen:    idGen,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PlayerService) Register(ctx context.Context, input RegisterPlayerInput) (item user.User, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Register")
	defer func() { endUsecaseSpan(span, err) }()

	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Role == "" {
		input.Role = user.RolePlayer
	}

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return user.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	existing, err := s.userRepo.List(ctx)
	if err != nil {
		return user.User{}, storeFailure(err, "list users")
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, input.Email) {
			return user.User{}, fmt.Errorf("%w: email %s is already registered", ErrInvalidInput, input.Email)
		}
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	item = user.User{
		ID:          userID,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Role:        input.Role,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.userRepo.Create(ctx, item); err != nil {
		return user.User{}, storeFailure(err, "create user")
	}

	s.logger.InfoContext(ctx, "player registered", "user_id", item.ID, "role", string(item.Role))
	return item, nil
}

func (s *PlayerService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "list users")
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, storeFailure(err, "get user by id")
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return item, nil
}
