package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
	"github.com/smolentsevaa/go-music-recommend/pkg/log"
)

// DecideInput — решение модератора по предложенному треку.
type DecideInput struct {
	NeteaseID  int64
	Accept     bool
	Reason     string
	ReviewerID uuid.UUID
}

// Decide — бизнес-операция решения модерации.
//
// Скрипт из независимых шагов, а не одна транзакция:
//  1. переход статуса pending -> accepted|rejected фиксируется атомарно
//     (CAS в сторадже); из конкурентных решений по одному треку побеждает
//     ровно одно, проигравшее получает ErrAlreadyDecided;
//  2. при accept — публикация в слот дня «на сегодня»; провал публикации
//     НЕ откатывает статус: трек остаётся accepted, модератору уходит
//     push_daily_fail, вызывающий получает ErrDailyRecommendFailed и
//     может повторить публикацию отдельно (RepushDaily);
//  3. уведомление автору (recommend_accept/recommend_refuse) ставится
//     best-effort: сбой логируется и не влияет на результат решения.
//
// Ошибки:
//   - ErrInvalidArgument — нулевой модератор или netease_id;
//   - ErrNotFound — трека с таким netease_id нет;
//   - ErrAlreadyDecided — трек уже прошёл модерацию;
//   - ErrDailyRecommendFailed — решение принято, публикация не удалась;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) Decide(ctx context.Context, in DecideInput) error {
	const op = "service/consider/Decide"

	lg := log.From(ctx).With(
		"op", op,
		"netease_id", in.NeteaseID,
		"reviewer_id", in.ReviewerID.String(),
		"accept", in.Accept,
	)

	if in.NeteaseID <= 0 || in.ReviewerID == uuid.Nil {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	status := models.StatusRejected
	if in.Accept {
		status = models.StatusAccepted
	}

	track, err := s.storage.UpdateStatus(ctx, in.NeteaseID, status)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("track not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyDecided):
			lg.Warn("already decided")
			return fmt.Errorf("%s: %w", op, ErrAlreadyDecided)
		default:
			lg.Error("storage error on UpdateStatus", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.metrics.Decisions.WithLabelValues(string(status)).Inc()
	lg.Info("decision_committed", slog.String("status", string(status)))

	if !in.Accept {
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			reason = s.cfg.Moderation.EmptyReason
		}

		s.enqueueMessage(ctx, models.Message{
			Kind:    models.KindRecommendRefuse,
			Body:    models.RecommendRefuseBody(track.Name, reason),
			TrackID: track.ID,
			UserID:  track.UserID,
		})

		return nil
	}

	dr, err := s.storage.PublishDaily(ctx, track.ID, time.Now().UTC())
	if err != nil {
		s.metrics.Publications.WithLabelValues("failed").Inc()
		lg.Warn("daily_publish_failed", slog.String("err", err.Error()))

		s.enqueueMessage(ctx, models.Message{
			Kind:    models.KindPushDailyFail,
			Body:    models.PushDailyFailBody(track.Name),
			TrackID: track.ID,
			UserID:  in.ReviewerID,
		})

		return fmt.Errorf("%s: %w", op, ErrDailyRecommendFailed)
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

// ListPending возвращает очередь модерации: pending-треки с
// offset-пагинацией (start, count), от старых к новым. Права модератора
// проверяются на транспортном крае.
//
// Ошибки:
//   - ErrInvalidArgument — отрицательный start;
//   - ErrInternal — ошибки стораджа.
func (s *Service) ListPending(ctx context.Context, start, count int32) ([]models.Track, error) {
	const op = "service/consider/ListPending"

	lg := log.From(ctx).With("op", op, "start", start, "count", count)

	if start < 0 {
		lg.Warn("invalid argument: negative start")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	count = s.normalizeLimit(count)

	tracks, err := s.storage.ListPendingTracks(ctx, start, count)
	if err != nil {
		lg.Error("storage error on ListPendingTracks", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return tracks, nil
}

// enqueueMessage ставит уведомление best-effort: сбой логируется и
// учитывается в метриках, но не доводится до вызывающего.
func (s *Service) enqueueMessage(ctx context.Context, msg models.Message) {
	if err := s.storage.CreateMessage(ctx, msg); err != nil {
		s.metrics.Messages.WithLabelValues(string(msg.Kind), "failed").Inc()
		log.From(ctx).Error("message_enqueue_failed",
			slog.String("kind", string(msg.Kind)),
			slog.String("track_id", msg.TrackID.String()),
			slog.String("err", err.Error()),
		)
		return
	}

	s.metrics.Messages.WithLabelValues(string(msg.Kind), "ok").Inc()
}

// normalizeLimit — нормализация count по конфигу.
//
// Правила:
//   - count <= 0 -> cfg.Limits.Default;
//   - count > max -> cfg.Limits.Max.
func (s *Service) normalizeLimit(count int32) int32 {
	if count <= 0 {
		return s.cfg.Limits.Default
	}

	if s.cfg.Limits.Max > 0 && count > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}

	return count
}
