package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
	"github.com/smolentsevaa/go-music-recommend/pkg/log"
)

// SubmitTrackInput — предложение трека пользователем.
type SubmitTrackInput struct {
	URL    string
	UserID uuid.UUID
}

// SubmitTrack — бизнес-операция предложения трека.
//
// Последовательность:
//   - метаданные запрашиваются у внешнего сервиса по ссылке;
//   - треки с числом комментариев выше потолка отклоняются до создания;
//   - создание в статусе pending, уведомлений на этом шаге нет.
//
// Ошибки:
//   - ErrInvalidArgument — пустая ссылка или нулевой пользователь;
//   - ErrLookupFailed — сбой внешнего сервиса (без ретраев);
//   - ErrCommentTooMuch — потолок комментариев превышен, ничего не создано;
//   - ErrConflict — трек с таким netease_id уже предложен;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) SubmitTrack(ctx context.Context, in SubmitTrackInput) (*models.Track, error) {
	const op = "service/tracks/SubmitTrack"

	in.URL = strings.TrimSpace(in.URL)
	lg := log.From(ctx).With("op", op, "user_id", in.UserID.String())

	if in.URL == "" {
		lg.Warn("invalid argument: empty url")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.music.Resolve(ctx, in.URL)
	if err != nil {
		lg.Warn("lookup_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrLookupFailed)
	}

	if info.CommentCount > s.cfg.Moderation.CommentCeiling {
		lg.Warn("comment_too_much",
			slog.Int64("netease_id", info.NeteaseID),
			slog.Int64("comment_count", info.CommentCount),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrCommentTooMuch)
	}

	track, err := s.storage.CreateTrack(ctx, models.Track{
		NeteaseID:    info.NeteaseID,
		Name:         info.Name,
		Singer:       info.Singer,
		Cover:        info.Cover,
		CommentCount: info.CommentCount,
		UserID:       in.UserID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			lg.Warn("duplicate netease_id", slog.Int64("netease_id", info.NeteaseID))
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}

		lg.Error("storage error on CreateTrack", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("track_submitted",
		slog.String("id", track.ID.String()),
		slog.Int64("netease_id", track.NeteaseID),
	)

	return track, nil
}

// ListRecommended возвращает треки, предложенные пользователем userID.
// Пустой userID означает «треки самого вызывающего».
//
// Ошибки:
//   - ErrInvalidArgument — не определить целевого пользователя;
//   - ErrInternal — ошибки стораджа.
func (s *Service) ListRecommended(ctx context.Context, userID, callerID uuid.UUID) ([]models.Track, error) {
	const op = "service/tracks/ListRecommended"

	target := userID
	if target == uuid.Nil {
		target = callerID
	}

	lg := log.From(ctx).With("op", op, "user_id", target.String())

	if target == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	tracks, err := s.storage.ListTracksByUser(ctx, target)
	if err != nil {
		lg.Error("storage error on ListTracksByUser", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return tracks, nil
}
