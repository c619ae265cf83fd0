package repository

import (
	"alcyxob/fitvideo/internal/domain" // Import our defined domain models
	"context"                          // Standard for request-scoped deadlines, cancellation signals, etc.
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64
}

// Found reports whether the delete matched at least one document.
// A zero count is a NotFound outcome, not a failure.
func (r *DeleteResult) Found() bool {
	return r != nil && r.DeletedCount > 0
}

// QuoteRepository defines the interface for the Quotes collection.
type QuoteRepository interface {
	GetRandom(ctx context.Context) (domain.Quote, error)
	InsertMany(ctx context.Context, quotes []domain.Quote) (int, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetPending(ctx context.Context) ([]domain.PendingUser, error)
	UpdateDetails(ctx context.Context, userName string, details domain.UserDetails) error
	Register(ctx context.Context, userName string) error
	Delete(ctx context.Context, userName string) (*DeleteResult, error)
}

// UserSessionRepository defines the interface for the UserSessions collection.
// Every update returns the session as it is after the update.
type UserSessionRepository interface {
	Create(ctx context.Context, userName string) error
	GetByUserName(ctx context.Context, userName string) (*domain.UserSession, error)
	UpdateVideos(ctx context.Context, userName string, videos []string) (*domain.UserSession, error)
	UpdateFinished(ctx context.Context, userName string, finished bool) (*domain.UserSession, error)
	UpdateCheck(ctx context.Context, userName string, value bool, index int) (*domain.UserSession, error)
	ResetChecks(ctx context.Context, userName string) (*domain.UserSession, error)
	IncrementCompleteSessions(ctx context.Context, userName string) (*domain.UserSession, error)
	IncrementOpenedSessions(ctx context.Context, userName string) (*domain.UserSession, error)
	Delete(ctx context.Context, userName string) (*DeleteResult, error)
}

// VideoRepository defines the interface for the video catalog.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (*domain.Video, error)
	InsertMany(ctx context.Context, videos []domain.Video) (int, error)
	GetByURL(ctx context.Context, url string) (*domain.Video, error)
	Delete(ctx context.Context, url string) (*domain.Video, error)
	ChangeLikeCount(ctx context.Context, url string, action domain.LikeAction) (*domain.Video, error)
	DecrementLikeCounts(ctx context.Context, urls []string) (int64, error)
	GetUnique(ctx context.Context) ([]string, error)
	ListByBodyPart(ctx context.Context, bodyPart string) ([]domain.Video, error)
	SortedByTitle(ctx context.Context, bodyPart string, ascending bool) ([]domain.Video, error)
	SortedByLikeCount(ctx context.Context, bodyPart string, highestFirst bool) ([]domain.Video, error)
	SortedByDifficulty(ctx context.Context, bodyPart string, beginnerFirst bool) ([]domain.Video, error)
}

// UserLikeRepository defines the interface for the UsersLike collection.
type UserLikeRepository interface {
	Add(ctx context.Context, userName, url string) error
	Remove(ctx context.Context, userName, url string) (*DeleteResult, error)
	GetURLsByUser(ctx context.Context, userName string) ([]string, error)
	DeleteByUser(ctx context.Context, userName string) (*DeleteResult, error)
}
