package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/pkg/log"
)

// RefreshStats — итог одного прохода фоновой зачистки.
type RefreshStats struct {
	// Scanned — сколько устаревших треков было обойдено.
	Scanned int
	// Updated — сколько счётчиков удалось обновить.
	Updated int
	// Failed — сколько обращений к внешнему сервису/стораджу не удалось.
	Failed int
}

// StartRefresh запускает периодическое обновление кэша комментариев
// с интервалом из конфига. Останавливается по ctx.
func (s *Service) StartRefresh(ctx context.Context) error {
	const op = "service/refresh/StartRefresh"

	interval := s.cfg.Refresh.Interval

	lg := log.From(ctx)
	lg.Info("refresh_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
		slog.Duration("max_age", s.cfg.Refresh.MaxAge),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("refresh_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if _, err := s.RefreshComments(ctx); err != nil {
				lg.Warn("refresh_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// RefreshComments — один проход зачистки: постраничный обход треков,
// у которых кэш комментариев старше cfg.Refresh.MaxAge, с запросом
// актуального значения у внешнего сервиса.
//
// Свойства прохода:
//   - сбой по отдельному треку логируется и пропускается, проход
//     продолжается (fault isolation);
//   - повторный запуск внутри окна свежести не делает внешних запросов:
//     обновлённые строки выпадают из предиката устаревания;
//   - порядок обработки треков не гарантируется.
func (s *Service) RefreshComments(ctx context.Context) (RefreshStats, error) {
	const op = "service/refresh/RefreshComments"

	lg := log.From(ctx)

	var stats RefreshStats
	now := time.Now().UTC()
	olderThan := now.Add(-s.cfg.Refresh.MaxAge)

	opts := models.ListOptions{Limit: s.cfg.Refresh.Batch}

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		page, err := s.storage.ListStaleTracks(ctx, olderThan, opts)
		if err != nil {
			return stats, fmt.Errorf("%s: list_stale: %w", op, err)
		}

		if len(page.Items) == 0 {
			break
		}

		for _, track := range page.Items {
			stats.Scanned++

			count, err := s.music.CommentCount(ctx, track.NeteaseID)
			if err != nil {
				stats.Failed++
				s.metrics.RefreshLookups.WithLabelValues("failed").Inc()
				lg.Warn("refresh_lookup_failed",
					slog.String("op", op),
					slog.Int64("netease_id", track.NeteaseID),
					slog.String("err", err.Error()),
				)
				continue
			}

			s.metrics.RefreshLookups.WithLabelValues("ok").Inc()

			if err := s.storage.UpdateCommentCount(ctx, track.ID, count, time.Now().UTC()); err != nil {
				stats.Failed++
				lg.Warn("refresh_update_failed",
					slog.String("op", op),
					slog.String("id", track.ID.String()),
					slog.String("err", err.Error()),
				)
				continue
			}

			stats.Updated++
		}

		if page.NextPageToken == "" {
			break
		}
		opts.PageToken = page.NextPageToken
	}

	lg.Info("refresh_done",
		slog.String("op", op),
		slog.Int("scanned", stats.Scanned),
		slog.Int("updated", stats.Updated),
		slog.Int("failed", stats.Failed),
	)

	return stats, nil
}
