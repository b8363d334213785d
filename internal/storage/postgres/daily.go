package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
)

// PublishDaily публикует accepted-трек в слот даты.
// Проверка статуса и вставка — один оператор (INSERT..SELECT с условием
// по review_status), занятость слота и повторную публикацию ловят
// уникальные ограничения. Гонка двух accepted-треков за один слот
// разрешается на уровне БД, без read-then-write в сервисе.
func (s *Storage) PublishDaily(ctx context.Context, trackID uuid.UUID, date time.Time) (*models.DailyRecommend, error) {
	const op = "storage.postgres.PublishDaily"

	id := uuid.New()

	var dr models.DailyRecommend
	err := s.db.QueryRow(ctx, `
	INSERT INTO daily_recommend (id, track_id, recommend_date)
	SELECT $1, t.id, $3
	FROM tracks t
	WHERE t.id = $2 AND t.review_status = $4
	RETURNING id, track_id, recommend_date, created_at
	`, id, trackID, date.UTC(), string(models.StatusAccepted)).Scan(
		&dr.ID,
		&dr.TrackID,
		&dr.RecommendDate,
		&dr.CreatedAt,
	)
	if err == nil {
		dr.CreatedAt = dr.CreatedAt.UTC()
		return &dr, nil
	}

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Ноль строк: либо трека нет, либо он не accepted.
	var status string
	if checkErr := s.db.QueryRow(ctx,
		`SELECT review_status FROM tracks WHERE id = $1`, trackID,
	).Scan(&status); checkErr != nil {
		if errors.Is(checkErr, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, checkErr)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotAccepted)
}

// ListDaily возвращает публикации с датой строго меньше endExclusive
// (nil — без границы), от новых к старым.
func (s *Storage) ListDaily(ctx context.Context, endExclusive *time.Time, limit int32) ([]models.DailyRecommend, error) {
	const op = "storage.postgres.ListDaily"

	if limit <= 0 {
		limit = 1
	}

	const base = `
	SELECT d.id, d.track_id, d.recommend_date, d.created_at, ` + trackColumnsPrefixed + `
	FROM daily_recommend d
	JOIN tracks t ON t.id = d.track_id`

	var rows pgx.Rows
	var err error

	if endExclusive == nil {
		rows, err = s.db.Query(ctx, base+`
		ORDER BY d.recommend_date DESC
		LIMIT $1
		`, limit)
	} else {
		rows, err = s.db.Query(ctx, base+`
		WHERE d.recommend_date < $1
		ORDER BY d.recommend_date DESC
		LIMIT $2
		`, endExclusive.UTC(), limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.DailyRecommend
	for rows.Next() {
		var dr models.DailyRecommend
		var status string

		if scanErr := rows.Scan(
			&dr.ID,
			&dr.TrackID,
			&dr.RecommendDate,
			&dr.CreatedAt,
			&dr.Track.ID,
			&dr.Track.NeteaseID,
			&dr.Track.Name,
			&dr.Track.Singer,
			&dr.Track.Cover,
			&dr.Track.CommentCount,
			&dr.Track.UserID,
			&status,
			&dr.Track.LastRefreshAt,
			&dr.Track.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		dr.Track.ReviewStatus = models.ReviewStatus(status)
		dr.CreatedAt = dr.CreatedAt.UTC()
		dr.Track.LastRefreshAt = dr.Track.LastRefreshAt.UTC()
		dr.Track.CreatedAt = dr.Track.CreatedAt.UTC()

		items = append(items, dr)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

const trackColumnsPrefixed = `t.id, t.netease_id, t.name, t.singer, t.cover, t.comment_count, t.user_id, t.review_status, t.last_refresh_at, t.created_at`
