package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
)

var ErrInvalidCheckIndex = errors.New("check index must be zero or greater")

// SessionService exposes the workout session lifecycle. Every mutation
// returns the session as stored after the change.
type SessionService interface {
	GetSession(ctx context.Context, userName string) (*domain.UserSession, error)
	SetVideos(ctx context.Context, userName string, videos []string) (*domain.UserSession, error)
	SetCheck(ctx context.Context, userName string, value bool, index int) (*domain.UserSession, error)
	ResetChecks(ctx context.Context, userName string) (*domain.UserSession, error)
	SetFinished(ctx context.Context, userName string, finished bool) (*domain.UserSession, error)
	CompleteSession(ctx context.Context, userName string) (*domain.UserSession, error)
	OpenSession(ctx context.Context, userName string) (*domain.UserSession, error)
}

type sessionService struct {
	sessionRepo repository.UserSessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.UserSessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) GetSession(ctx context.Context, userName string) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.GetByUserName(ctx, userName))
}

func (s *sessionService) SetVideos(ctx context.Context, userName string, videos []string) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.UpdateVideos(ctx, userName, videos))
}

func (s *sessionService) SetCheck(ctx context.Context, userName string, value bool, index int) (*domain.UserSession, error) {
	if index < 0 {
		return nil, ErrInvalidCheckIndex
	}
	return mapSession(s.sessionRepo.UpdateCheck(ctx, userName, value, index))
}

func (s *sessionService) ResetChecks(ctx context.Context, userName string) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.ResetChecks(ctx, userName))
}

func (s *sessionService) SetFinished(ctx context.Context, userName string, finished bool) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.UpdateFinished(ctx, userName, finished))
}

func (s *sessionService) CompleteSession(ctx context.Context, userName string) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.IncrementCompleteSessions(ctx, userName))
}

func (s *sessionService) OpenSession(ctx context.Context, userName string) (*domain.UserSession, error) {
	return mapSession(s.sessionRepo.IncrementOpenedSessions(ctx, userName))
}

// mapSession translates repository errors into service errors.
func mapSession(session *domain.UserSession, err error) (*domain.UserSession, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
