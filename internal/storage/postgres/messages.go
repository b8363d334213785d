package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
)

// CreateMessage сохраняет уведомление.
// Вызывается сервисом best-effort, после фиксации решения модерации.
func (s *Storage) CreateMessage(ctx context.Context, msg models.Message) error {
	const op = "storage.postgres.CreateMessage"

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO messages (id, kind, body, track_id, user_id)
	VALUES ($1, $2, $3, $4, $5)
	`, msg.ID, string(msg.Kind), msg.Body, msg.TrackID, msg.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
