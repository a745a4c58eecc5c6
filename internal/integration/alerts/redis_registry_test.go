package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

func newTestRegistry(t *testing.T) (adapter.AlertRegistry, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisAlertRegistry(client), server
}

func testAlert(level entity.AlertLevel, title string, timestamp time.Time) *entity.Alert {
	return &entity.Alert{
		ID:        uuid.New(),
		Level:     level,
		Title:     title,
		Message:   "You've used 85% of your Food & Dining budget ($85.00 / $100.00)",
		Timestamp: timestamp,
		Duration:  5 * time.Second,
	}
}

func TestRedisAlertRegistry_ShowAndActive(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	alert := testAlert(entity.AlertLevelWarning, "⚠️ Budget Warning", time.Now().UTC())
	if err := registry.Show(ctx, alert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active, err := registry.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active alert, got %d", len(active))
	}
	got := active[0]
	if got.ID != alert.ID || got.Level != entity.AlertLevelWarning || got.Title != alert.Title {
		t.Errorf("unexpected alert: %+v", got)
	}
	if got.Duration != 5*time.Second {
		t.Errorf("expected 5s duration, got %s", got.Duration)
	}
}

func TestRedisAlertRegistry_ExpiresAfterDuration(t *testing.T) {
	registry, server := newTestRegistry(t)
	ctx := context.Background()

	alert := testAlert(entity.AlertLevelError, "⚠️ Budget Exceeded", time.Now().UTC())
	alert.Duration = 6 * time.Second
	if err := registry.Show(ctx, alert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server.FastForward(7 * time.Second)

	active, err := registry.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected alert expired, got %d", len(active))
	}
}

func TestRedisAlertRegistry_DismissIdempotent(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	alert := testAlert(entity.AlertLevelInfo, "Heads up", time.Now().UTC())
	if err := registry.Show(ctx, alert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := registry.Dismiss(ctx, alert.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Dismissing again, or dismissing an unknown ID, is a no-op.
	if err := registry.Dismiss(ctx, alert.ID); err != nil {
		t.Fatalf("expected repeated dismiss to succeed, got %v", err)
	}
	if err := registry.Dismiss(ctx, uuid.New()); err != nil {
		t.Fatalf("expected unknown dismiss to succeed, got %v", err)
	}

	active, err := registry.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active alerts, got %d", len(active))
	}
}

func TestRedisAlertRegistry_ActiveOldestFirst(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	base := time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)
	newest := testAlert(entity.AlertLevelError, "⚠️ Budget Exceeded", base.Add(2*time.Minute))
	oldest := testAlert(entity.AlertLevelWarning, "⚠️ Budget Warning", base)
	middle := testAlert(entity.AlertLevelInfo, "Heads up", base.Add(time.Minute))
	for _, alert := range []*entity.Alert{newest, oldest, middle} {
		if err := registry.Show(ctx, alert); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	active, err := registry.Active(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 active alerts, got %d", len(active))
	}
	for i, want := range []*entity.Alert{oldest, middle, newest} {
		if active[i].ID != want.ID {
			t.Errorf("position %d: expected %q, got %q", i, want.Title, active[i].Title)
		}
	}
}

func TestRedisAlertRegistry_ActiveEmpty(t *testing.T) {
	registry, _ := newTestRegistry(t)

	active, err := registry.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected empty registry, got %d", len(active))
	}
}
