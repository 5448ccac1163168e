package memory

import (
	"context"
	"errors"
	"testing"

	"tour-srv/internal/dialogue/repository"
	"tour-srv/internal/model"
)

func TestGetMissingSession(t *testing.T) {
	repo := New()

	_, err := repo.Get(context.Background(), "nobody")
	if !errors.Is(err, repository.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSaveGetRoundtrip(t *testing.T) {
	repo := New()
	ctx := context.Background()

	dest := "Đà Nẵng"
	session := model.NewSession()
	session.Stage = model.StageSearching
	session.Destination = &dest
	session.History = append(session.History, model.Message{Role: model.RoleUser, Content: "đi Đà Nẵng"})

	if err := repo.Save(ctx, "u1", session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Stage != model.StageSearching {
		t.Fatalf("stage = %q", got.Stage)
	}
	if got.Destination == nil || *got.Destination != dest {
		t.Fatalf("destination = %v", got.Destination)
	}
	if len(got.History) != 1 || got.History[0].Content != "đi Đà Nẵng" {
		t.Fatalf("history = %+v", got.History)
	}
}

func TestSavedSessionIsIsolated(t *testing.T) {
	repo := New()
	ctx := context.Background()

	session := model.NewSession()
	session.History = append(session.History, model.Message{Role: model.RoleUser, Content: "first"})
	if err := repo.Save(ctx, "u1", session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the caller's copy after Save must not leak into the store.
	session.History[0].Content = "mutated"

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.History[0].Content != "first" {
		t.Fatalf("stored session shares memory with the caller: %+v", got.History)
	}
}

func TestDelete(t *testing.T) {
	repo := New()
	ctx := context.Background()

	if err := repo.Save(ctx, "u1", model.NewSession()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}

	// Deleting an absent session is a no-op.
	if err := repo.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("Delete of missing session failed: %v", err)
	}
}
