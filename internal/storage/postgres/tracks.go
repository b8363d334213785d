package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
)

const trackColumns = `id, netease_id, name, singer, cover, comment_count, user_id, review_status, last_refresh_at, created_at`

// scanTrack — единый скан строки трека с нормализацией времени в UTC.
func scanTrack(row pgx.Row) (*models.Track, error) {
	var t models.Track
	var status string

	if err := row.Scan(
		&t.ID,
		&t.NeteaseID,
		&t.Name,
		&t.Singer,
		&t.Cover,
		&t.CommentCount,
		&t.UserID,
		&status,
		&t.LastRefreshAt,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.ReviewStatus = models.ReviewStatus(status)
	t.LastRefreshAt = t.LastRefreshAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()

	return &t, nil
}

// CreateTrack сохраняет новый трек в статусе pending.
// Дубликат netease_id — storage.ErrConflict.
func (s *Storage) CreateTrack(ctx context.Context, track models.Track) (*models.Track, error) {
	const op = "storage.postgres.CreateTrack"

	if track.ID == uuid.Nil {
		track.ID = uuid.New()
	}

	row := s.db.QueryRow(ctx, `
	INSERT INTO tracks (id, netease_id, name, singer, cover, comment_count, user_id, review_status, last_refresh_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING `+trackColumns+`
	`, track.ID, track.NeteaseID, track.Name, track.Singer, track.Cover,
		track.CommentCount, track.UserID, string(models.StatusPending), time.Now().UTC())

	created, err := scanTrack(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// TrackByNeteaseID возвращает трек по внешнему идентификатору.
func (s *Storage) TrackByNeteaseID(ctx context.Context, neteaseID int64) (*models.Track, error) {
	const op = "storage.postgres.TrackByNeteaseID"

	row := s.db.QueryRow(ctx, `
	SELECT `+trackColumns+`
	FROM tracks
	WHERE netease_id = $1
	`, neteaseID)

	track, err := scanTrack(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return track, nil
}

// ListTracksByUser возвращает треки пользователя от новых к старым.
func (s *Storage) ListTracksByUser(ctx context.Context, userID uuid.UUID) ([]models.Track, error) {
	const op = "storage.postgres.ListTracksByUser"

	rows, err := s.db.Query(ctx, `
	SELECT `+trackColumns+`
	FROM tracks
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectTracks(op, rows)
}

// ListPendingTracks возвращает страницу pending-треков с offset-пагинацией,
// от старых к новым (очередь модерации).
func (s *Storage) ListPendingTracks(ctx context.Context, start, count int32) ([]models.Track, error) {
	const op = "storage.postgres.ListPendingTracks"

	if start < 0 {
		start = 0
	}
	if count <= 0 {
		count = 1
	}

	rows, err := s.db.Query(ctx, `
	SELECT `+trackColumns+`
	FROM tracks
	WHERE review_status = $1
	ORDER BY created_at ASC, id ASC
	OFFSET $2 LIMIT $3
	`, string(models.StatusPending), start, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectTracks(op, rows)
}

// UpdateStatus — одноразовый переход pending -> status одним оператором
// (CAS по полю review_status): из конкурентных решений по одному треку
// побеждает ровно одно.
func (s *Storage) UpdateStatus(ctx context.Context, neteaseID int64, status models.ReviewStatus) (*models.Track, error) {
	const op = "storage.postgres.UpdateStatus"

	row := s.db.QueryRow(ctx, `
	UPDATE tracks
	SET review_status = $2
	WHERE netease_id = $1 AND review_status = $3
	RETURNING `+trackColumns+`
	`, neteaseID, string(status), string(models.StatusPending))

	track, err := scanTrack(row)
	if err == nil {
		return track, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Ноль строк: либо трека нет, либо он уже прошёл модерацию.
	var exists bool
	if checkErr := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tracks WHERE netease_id = $1)`, neteaseID,
	).Scan(&exists); checkErr != nil {
		return nil, fmt.Errorf("%s: %w", op, checkErr)
	}

	if !exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyDecided)
}

// UpdateCommentCount обновляет кэш числа комментариев и метку обновления.
func (s *Storage) UpdateCommentCount(ctx context.Context, id uuid.UUID, count int64, refreshedAt time.Time) error {
	const op = "storage.postgres.UpdateCommentCount"

	tag, err := s.db.Exec(ctx, `
	UPDATE tracks
	SET comment_count = $2, last_refresh_at = $3
	WHERE id = $1
	`, id, count, refreshedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListStaleTracks возвращает страницу треков с устаревшим кэшем комментариев.
// Keyset-курсор по id: обновлённые строки выпадают из предиката, а курсор
// остаётся стабильным даже при сбоях отдельных обновлений.
func (s *Storage) ListStaleTracks(ctx context.Context, olderThan time.Time, opts models.ListOptions) (*models.TrackPage, error) {
	const op = "storage.postgres.ListStaleTracks"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT `+trackColumns+`
		FROM tracks
		WHERE last_refresh_at < $1
		ORDER BY id ASC
		LIMIT $2
		`, olderThan.UTC(), limit)
	} else {
		idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT `+trackColumns+`
		FROM tracks
		WHERE last_refresh_at < $1 AND id > $2
		ORDER BY id ASC
		LIMIT $3
		`, olderThan.UTC(), idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items, err := collectTracks(op, rows)
	if err != nil {
		return nil, err
	}

	var page models.TrackPage
	page.Items = items

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		page.NextPageToken = encodePageToken(page.Items[l-1].ID)
	}

	return &page, nil
}

// collectTracks вычитывает все строки курсора.
func collectTracks(op string, rows pgx.Rows) ([]models.Track, error) {
	var items []models.Track

	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		items = append(items, *track)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// encodePageToken кодирует ключ страницы в непрозрачный токен для клиента.
func encodePageToken(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id.String()))
}

// decodePageToken декодирует токен обратно в ключ.
func decodePageToken(token string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
