package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this name already exists")
	ErrSessionNotFound   = errors.New("user session not found")
	ErrValidationFailed  = errors.New("validation failed")
)

// --- Service Interface ---
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userName string) (*domain.User, error)
	PendingUsers(ctx context.Context) ([]domain.PendingUser, error)
	RegisterUser(ctx context.Context, user *domain.User) error
	ApproveUser(ctx context.Context, userName string) error
	UpdateDetails(ctx context.Context, userName string, details domain.UserDetails) error
	DeleteUser(ctx context.Context, userName string) error
}

// --- Service Implementation ---

// userService implements the UserService interface.
type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.UserSessionRepository
	likeRepo    repository.UserLikeRepository
	videoRepo   repository.VideoRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.UserSessionRepository,
	likeRepo repository.UserLikeRepository,
	videoRepo repository.VideoRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, userName string) (*domain.User, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) PendingUsers(ctx context.Context) ([]domain.PendingUser, error) {
	return s.userRepo.GetPending(ctx)
}

// RegisterUser stores a new user and creates its initial workout session.
// If the session insert fails the user is left in place.
func (s *userService) RegisterUser(ctx context.Context, user *domain.User) error {
	if user == nil || user.UserName == "" {
		return ErrValidationFailed
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserAlreadyExists
		}
		return err
	}

	if err := s.sessionRepo.Create(ctx, user.UserName); err != nil {
		return fmt.Errorf("create session for %s: %w", user.UserName, err)
	}
	return nil
}

// ApproveUser flips isRegistered to "Y".
func (s *userService) ApproveUser(ctx context.Context, userName string) error {
	if err := s.userRepo.Register(ctx, userName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) UpdateDetails(ctx context.Context, userName string, details domain.UserDetails) error {
	if userName == "" {
		return ErrValidationFailed
	}
	if err := s.userRepo.UpdateDetails(ctx, userName, details); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// DeleteUser removes every trace of a user:
//  1. fetch the urls the user liked
//  2. decrement the like count of each of those videos
//  3. delete the session
//  4. delete the like records
//  5. delete the user
//
// Steps run in order with no rollback. A missing session or user stops the
// chain with ErrSessionNotFound or ErrUserNotFound; a user without likes is fine.
func (s *userService) DeleteUser(ctx context.Context, userName string) error {
	if userName == "" {
		return ErrValidationFailed
	}
	logger := log.With().Str("user", userName).Logger()

	urls, err := s.likeRepo.GetURLsByUser(ctx, userName)
	if err != nil {
		return fmt.Errorf("fetch liked videos: %w", err)
	}

	matched, err := s.videoRepo.DecrementLikeCounts(ctx, urls)
	if err != nil {
		return fmt.Errorf("decrement like counts: %w", err)
	}
	logger.Debug().Int("liked", len(urls)).Int64("matched", matched).Msg("Like counts decremented")

	sessionResult, err := s.sessionRepo.Delete(ctx, userName)
	if err != nil {
		return fmt.Errorf("delete user session: %w", err)
	}
	if !sessionResult.Found() {
		logger.Warn().Msg("No session to delete")
		return ErrSessionNotFound
	}

	if _, err := s.likeRepo.DeleteByUser(ctx, userName); err != nil {
		return fmt.Errorf("delete user likes: %w", err)
	}

	userResult, err := s.userRepo.Delete(ctx, userName)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !userResult.Found() {
		logger.Warn().Msg("No user to delete")
		return ErrUserNotFound
	}

	logger.Info().Msg("User deleted")
	return nil
}
