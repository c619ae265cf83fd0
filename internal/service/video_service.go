package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrVideoNotFound     = errors.New("video not found")
	ErrVideoExists       = errors.New("video with this url already exists")
	ErrInvalidDifficulty = errors.New("difficulty must be Beginner, Intermediate or Advanced")
	ErrInvalidSort       = errors.New("unknown sort order")
)

type VideoService interface {
	AddVideo(ctx context.Context, url, difficulty, bodyPart, title string) (*domain.Video, error)
	RemoveVideo(ctx context.Context, url string) (*domain.Video, error)
	GetVideo(ctx context.Context, url string) (*domain.Video, error)
	UniqueVideos(ctx context.Context) ([]string, error)
	ListVideos(ctx context.Context, bodyPart string, sort domain.VideoSort, ascending bool) ([]domain.Video, error)
}

type videoService struct {
	videoRepo repository.VideoRepository
}

// NewVideoService creates a new instance of videoService.
func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &videoService{videoRepo: videoRepo}
}

// AddVideo adds a catalog entry with no likes.
func (s *videoService) AddVideo(ctx context.Context, url, difficulty, bodyPart, title string) (*domain.Video, error) {
	if url == "" {
		return nil, ErrValidationFailed
	}
	if !domain.IsValidDifficulty(difficulty) {
		return nil, ErrInvalidDifficulty
	}

	video, err := s.videoRepo.Create(ctx, &domain.Video{
		URL:        url,
		Difficulty: difficulty,
		BodyPart:   bodyPart,
		Title:      title,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrVideoExists
		}
		return nil, err
	}
	return video, nil
}

func (s *videoService) RemoveVideo(ctx context.Context, url string) (*domain.Video, error) {
	return mapVideo(s.videoRepo.Delete(ctx, url))
}

func (s *videoService) GetVideo(ctx context.Context, url string) (*domain.Video, error) {
	return mapVideo(s.videoRepo.GetByURL(ctx, url))
}

// UniqueVideos picks at most one random video url per difficulty tier.
func (s *videoService) UniqueVideos(ctx context.Context) ([]string, error) {
	return s.videoRepo.GetUnique(ctx)
}

// ListVideos returns the videos of a body part. ascending means A-Z for
// titles, lowest first for likes and Beginner first for difficulty.
func (s *videoService) ListVideos(ctx context.Context, bodyPart string, sort domain.VideoSort, ascending bool) ([]domain.Video, error) {
	switch sort {
	case domain.SortNone:
		return s.videoRepo.ListByBodyPart(ctx, bodyPart)
	case domain.SortTitle:
		return s.videoRepo.SortedByTitle(ctx, bodyPart, ascending)
	case domain.SortLikeCount:
		return s.videoRepo.SortedByLikeCount(ctx, bodyPart, !ascending)
	case domain.SortDifficulty:
		return s.videoRepo.SortedByDifficulty(ctx, bodyPart, ascending)
	default:
		return nil, ErrInvalidSort
	}
}

func mapVideo(video *domain.Video, err error) (*domain.Video, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}
