// Package alerts implements the transient alert registry on Redis.
// Keys carry a TTL equal to the alert duration, so expiry needs no
// application-side timer.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

const alertKeyPrefix = "alert:"

// alertRecord is the JSON document stored per alert key.
type alertRecord struct {
	ID         uuid.UUID         `json:"id"`
	Level      entity.AlertLevel `json:"level"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	DurationMS int64             `json:"duration_ms"`
}

// redisAlertRegistry implements the adapter.AlertRegistry interface.
type redisAlertRegistry struct {
	client *redis.Client
}

// NewRedisAlertRegistry creates a new Redis-backed alert registry.
func NewRedisAlertRegistry(client *redis.Client) adapter.AlertRegistry {
	return &redisAlertRegistry{
		client: client,
	}
}

// Show stores the alert with a TTL equal to its duration.
func (r *redisAlertRegistry) Show(ctx context.Context, alert *entity.Alert) error {
	record := alertRecord{
		ID:         alert.ID,
		Level:      alert.Level,
		Title:      alert.Title,
		Message:    alert.Message,
		Timestamp:  alert.Timestamp,
		DurationMS: alert.Duration.Milliseconds(),
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	key := alertKeyPrefix + alert.ID.String()
	if err := r.client.Set(ctx, key, raw, alert.Duration).Err(); err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	return nil
}

// Dismiss removes an alert before expiry. Idempotent.
func (r *redisAlertRegistry) Dismiss(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, alertKeyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}
	return nil
}

// Active lists the alerts that have not yet expired, oldest first.
func (r *redisAlertRegistry) Active(ctx context.Context) ([]*entity.Alert, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, alertKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan alerts: %w", err)
	}
	if len(keys) == 0 {
		return []*entity.Alert{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}

	alerts := make([]*entity.Alert, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Key expired between SCAN and MGET.
			continue
		}
		var record alertRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to decode alert: %w", err)
		}
		alerts = append(alerts, &entity.Alert{
			ID:        record.ID,
			Level:     record.Level,
			Title:     record.Title,
			Message:   record.Message,
			Timestamp: record.Timestamp,
			Duration:  time.Duration(record.DurationMS) * time.Millisecond,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Timestamp.Equal(alerts[j].Timestamp) {
			return alerts[i].ID.String() < alerts[j].ID.String()
		}
		return alerts[i].Timestamp.Before(alerts[j].Timestamp)
	})
	return alerts, nil
}
