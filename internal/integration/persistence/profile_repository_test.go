package persistence

import (
	"context"
	"testing"

	"github.com/smartspend/backend/internal/domain/entity"
)

func TestProfileRepository_GetUnset(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	profile, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil for unset profile, got %+v", profile)
	}
}

func TestProfileRepository_SaveIsSingleton(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	age := 30
	gender := entity.GenderFemale
	if err := repo.Save(ctx, &entity.UserProfile{Name: "Alex", Age: &age, Gender: &gender}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A second save replaces the row, never adds one.
	if err := repo.Save(ctx, &entity.UserProfile{Name: "Sam"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil || profile.Name != "Sam" {
		t.Fatalf("expected replaced profile, got %+v", profile)
	}
	if profile.Age != nil || profile.Gender != nil {
		t.Errorf("expected optional fields cleared, got %+v", profile)
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, &entity.UserProfile{Name: "Alex"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("expected repeated delete to be a no-op, got %v", err)
	}

	profile, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Error("expected profile removed")
	}
}
