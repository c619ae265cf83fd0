package service

import (
	"alcyxob/fitvideo/internal/domain"
	"context"
	"errors"
	"testing"
)

func TestLikeService_LikeUnlike(t *testing.T) {
	store := newFakeStore()
	store.videos["X"] = domain.Video{URL: "X", LikeCount: 5}
	svc := NewLikeService(fakeLikeRepo{store}, fakeVideoRepo{store})
	ctx := context.Background()

	video, err := svc.Like(ctx, "alice", "X")
	if err != nil {
		t.Fatalf("Like returned error: %v", err)
	}
	if video.LikeCount != 6 {
		t.Errorf("likeCount = %d, want 6", video.LikeCount)
	}

	if _, err := svc.Like(ctx, "alice", "X"); !errors.Is(err, ErrAlreadyLiked) {
		t.Errorf("expected ErrAlreadyLiked, got %v", err)
	}
	if store.videos["X"].LikeCount != 6 {
		t.Errorf("duplicate like changed count to %d", store.videos["X"].LikeCount)
	}

	liked, err := svc.LikedVideos(ctx, "alice")
	if err != nil || len(liked) != 1 || liked[0] != "X" {
		t.Errorf("LikedVideos = %v, %v", liked, err)
	}

	video, err = svc.Unlike(ctx, "alice", "X")
	if err != nil {
		t.Fatalf("Unlike returned error: %v", err)
	}
	if video.LikeCount != 5 {
		t.Errorf("likeCount = %d, want 5", video.LikeCount)
	}

	if _, err := svc.Unlike(ctx, "alice", "X"); !errors.Is(err, ErrNotLiked) {
		t.Errorf("expected ErrNotLiked, got %v", err)
	}
}

func TestLikeService_UnknownVideo(t *testing.T) {
	store := newFakeStore()
	svc := NewLikeService(fakeLikeRepo{store}, fakeVideoRepo{store})

	if _, err := svc.Like(context.Background(), "alice", "missing"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
	if len(store.likes["alice"]) != 0 {
		t.Error("like recorded for unknown video")
	}
}
