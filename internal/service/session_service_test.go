package service

import (
	"alcyxob/fitvideo/internal/domain"
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestSessionService_SetCheck(t *testing.T) {
	store := newFakeStore()
	store.sessions["alice"] = *domain.NewUserSession("alice")
	svc := NewSessionService(fakeSessionRepo{store})
	ctx := context.Background()

	session, err := svc.SetCheck(ctx, "alice", true, 3)
	if err != nil {
		t.Fatalf("SetCheck returned error: %v", err)
	}
	if want := []bool{false, false, false, true}; !reflect.DeepEqual(session.Checks, want) {
		t.Errorf("checks = %v, want %v", session.Checks, want)
	}

	session, err = svc.SetCheck(ctx, "alice", true, 1)
	if err != nil {
		t.Fatalf("SetCheck returned error: %v", err)
	}
	if want := []bool{false, true, false, true}; !reflect.DeepEqual(session.Checks, want) {
		t.Errorf("checks = %v, want %v", session.Checks, want)
	}

	if _, err := svc.SetCheck(ctx, "alice", true, -1); !errors.Is(err, ErrInvalidCheckIndex) {
		t.Errorf("expected ErrInvalidCheckIndex, got %v", err)
	}
	if _, err := svc.SetCheck(ctx, "nobody", true, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	session, err = svc.ResetChecks(ctx, "alice")
	if err != nil || len(session.Checks) != 0 {
		t.Errorf("ResetChecks = %v, %v", session, err)
	}
}

func TestSessionService_Counters(t *testing.T) {
	store := newFakeStore()
	store.sessions["alice"] = *domain.NewUserSession("alice")
	svc := NewSessionService(fakeSessionRepo{store})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.OpenSession(ctx, "alice"); err != nil {
			t.Fatalf("OpenSession returned error: %v", err)
		}
	}
	session, err := svc.CompleteSession(ctx, "alice")
	if err != nil {
		t.Fatalf("CompleteSession returned error: %v", err)
	}
	if session.OpenedSessions != 2 || session.CompleteSessions != 1 {
		t.Errorf("opened/complete = %d/%d, want 2/1", session.OpenedSessions, session.CompleteSessions)
	}

	session, err = svc.SetFinished(ctx, "alice", false)
	if err != nil || session.Finished {
		t.Errorf("SetFinished = %+v, %v", session, err)
	}

	session, err = svc.SetVideos(ctx, "alice", []string{"X", "Y"})
	if err != nil || !reflect.DeepEqual(session.Videos, []string{"X", "Y"}) {
		t.Errorf("SetVideos = %+v, %v", session, err)
	}
}
