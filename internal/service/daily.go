package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
	"github.com/smolentsevaa/go-music-recommend/pkg/log"
)

// dailyDateLayout — формат фильтра end_date в списке публикаций.
const dailyDateLayout = "2006-01-02"

// ListDaily возвращает публикации «рекомендаций дня» с датой строго
// меньше endDate (пустая строка — без границы), от новых к старым.
// Лимит нормализуется по конфигу.
//
// Ошибки:
//   - ErrDateFormat — endDate не разбирается как YYYY-MM-DD; запрос к
//     хранилищу при этом не выполняется;
//   - ErrInternal — ошибки стораджа.
func (s *Service) ListDaily(ctx context.Context, endDate string, count int32) ([]models.DailyRecommend, error) {
	const op = "service/daily/ListDaily"

	lg := log.From(ctx).With("op", op, "end_date", endDate, "count", count)

	var endExclusive *time.Time
	if strings.TrimSpace(endDate) != "" {
		parsed, err := time.Parse(dailyDateLayout, strings.TrimSpace(endDate))
		if err != nil {
			lg.Warn("bad end_date")
			return nil, fmt.Errorf("%s: %w", op, ErrDateFormat)
		}

		endExclusive = &parsed
	}

	count = s.normalizeLimit(count)

	items, err := s.storage.ListDaily(ctx, endExclusive, count)
	if err != nil {
		lg.Error("storage error on ListDaily", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return items, nil
}

// RepushDaily повторяет публикацию уже принятого трека в слот дня
// «на сегодня» — путь восстановления после ErrDailyRecommendFailed,
// без повторной модерации. Успешная публикация достаёт автору то же
// уведомление recommend_accept, что и штатный путь.
//
// Ошибки:
//   - ErrInvalidArgument — нулевой netease_id;
//   - ErrNotFound — трека нет;
//   - ErrNotAccepted — трек не в статусе accepted;
//   - ErrConflict — слот даты занят или трек уже публиковался;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) RepushDaily(ctx context.Context, neteaseID int64) error {
	const op = "service/daily/RepushDaily"

	lg := log.From(ctx).With("op", op, "netease_id", neteaseID)

	if neteaseID <= 0 {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	track, err := s.storage.TrackByNeteaseID(ctx, neteaseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("track not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on TrackByNeteaseID", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	dr, err := s.storage.PublishDaily(ctx, track.ID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAccepted):
			lg.Warn("track not accepted")
			return fmt.Errorf("%s: %w", op, ErrNotAccepted)
		case errors.Is(err, storage.ErrConflict):
			s.metrics.Publications.WithLabelValues("failed").Inc()
			lg.Warn("slot occupied or track already published")
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("track not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PublishDaily", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.metrics.Publications.WithLabelValues("ok").Inc()
	lg.Info("daily_published", slog.String("date", dr.ReadableDate()))

	s.enqueueMessage(ctx, models.Message{
		Kind:    models.KindRecommendAccept,
		Body:    models.RecommendAcceptBody(track.Name, dr.ReadableDate()),
		TrackID: track.ID,
		UserID:  track.UserID,
	})

	return nil
}
