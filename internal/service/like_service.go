package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
	"fmt"
)

var (
	ErrAlreadyLiked = errors.New("video already liked by this user")
	ErrNotLiked     = errors.New("video is not liked by this user")
)

type LikeService interface {
	LikedVideos(ctx context.Context, userName string) ([]string, error)
	Like(ctx context.Context, userName, url string) (*domain.Video, error)
	Unlike(ctx context.Context, userName, url string) (*domain.Video, error)
}

type likeService struct {
	likeRepo  repository.UserLikeRepository
	videoRepo repository.VideoRepository
}

// NewLikeService creates a new instance of likeService.
func NewLikeService(likeRepo repository.UserLikeRepository, videoRepo repository.VideoRepository) LikeService {
	return &likeService{likeRepo: likeRepo, videoRepo: videoRepo}
}

func (s *likeService) LikedVideos(ctx context.Context, userName string) ([]string, error) {
	return s.likeRepo.GetURLsByUser(ctx, userName)
}

// Like records the like, then bumps the video's like count.
func (s *likeService) Like(ctx context.Context, userName, url string) (*domain.Video, error) {
	if userName == "" || url == "" {
		return nil, ErrValidationFailed
	}
	if _, err := mapVideo(s.videoRepo.GetByURL(ctx, url)); err != nil {
		return nil, err
	}

	if err := s.likeRepo.Add(ctx, userName, url); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("record like: %w", err)
	}
	return mapVideo(s.videoRepo.ChangeLikeCount(ctx, url, domain.LikeUp))
}

// Unlike removes the like, then lowers the video's like count.
func (s *likeService) Unlike(ctx context.Context, userName, url string) (*domain.Video, error) {
	if userName == "" || url == "" {
		return nil, ErrValidationFailed
	}

	result, err := s.likeRepo.Remove(ctx, userName, url)
	if err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	if !result.Found() {
		return nil, ErrNotLiked
	}
	return mapVideo(s.videoRepo.ChangeLikeCount(ctx, url, domain.LikeDown))
}
