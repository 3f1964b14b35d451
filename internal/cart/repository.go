package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"digipasal-be/internal/logger"

	"go.uber.org/zap"
)

// Repository mirrors the cart to a durable per-user snapshot slot.
// Writes are last-write-wins; there is no versioning or migration.
type Repository interface {
	SaveSnapshot(ctx context.Context, userID string, items []LineItem) error
	LoadSnapshot(ctx context.Context, userID string) ([]LineItem, error)
	DeleteSnapshot(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveSnapshot(ctx context.Context, userID string, items []LineItem) error {
	snap := Snapshot{
		Items:      items,
		Total:      Total(items),
		CapturedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveSnapshot, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO carts (user_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`, userID, payload)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to save cart snapshot",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedSaveSnapshot, err)
	}

	return nil
}

func (r *repository) LoadSnapshot(ctx context.Context, userID string) ([]LineItem, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadSnapshot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		// A corrupt snapshot degrades to an empty cart, the same way a
		// malformed storage slot would on the client.
		logger.FromCtx(ctx).Warn("cart snapshot unreadable, starting empty",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return []LineItem{}, nil
	}

	if snap.Items == nil {
		return []LineItem{}, nil
	}
	return snap.Items, nil
}

func (r *repository) DeleteSnapshot(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
