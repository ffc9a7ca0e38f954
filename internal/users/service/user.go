package service

import (
	"context"
	"errors"

	"github.com/E11SH/RENTHUB/internal/auth"
	userserrors "github.com/E11SH/RENTHUB/internal/users/errors"
	"github.com/E11SH/RENTHUB/internal/users/repository"
	"github.com/E11SH/RENTHUB/pkg/config"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/events"
	"github.com/E11SH/RENTHUB/pkg/model"
	"github.com/E11SH/RENTHUB/pkg/sanitizer"
)

type UserService interface {
	Register(ctx context.Context, req *model.RegisterRequest) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.Tokens
	producer *events.Producer
	cfg      *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.Tokens,
	producer *events.Producer,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		producer: producer,
		cfg:      cfg,
	}
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) error {
	req.Name = sanitizer.NormalizeName(req.Name)
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Type == "" {
		return apperrors.InvalidInput("Please enter all fields")
	}
	if req.Type != model.RoleSeeker && req.Type != model.RoleAdvertiser {
		return apperrors.InvalidInput("Type must be seeker or advertiser")
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return apperrors.Conflict("User already exists")
	} else if !errors.Is(err, userserrors.ErrNotFound) {
		return apperrors.Internal("Failed to check existing user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Type:     req.Type,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicateEmail) {
			return apperrors.Conflict("User already exists")
		}
		return apperrors.Internal("Failed to create user", err)
	}

	s.producer.Publish(ctx, events.TypeUserRegistered, user.ID, user.Public())

	s.cfg.Log.Info("User registered", "id", user.ID, "type", user.Type)
	return nil
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, apperrors.InvalidInput("Please enter all fields")
	}

	// Unknown email and wrong password produce the identical failure so
	// responses cannot be used to enumerate accounts.
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, user.Type)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("User logged in", "id", user.ID, "type", user.Type)
	return &model.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("User", id)
		}
		if errors.Is(err, userserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid user ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}

	return user, nil
}
