// storage определяет контракты доступа к БД для music-service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (дубликат netease_id,
	// занятый слот даты или повторная публикация трека).
	ErrConflict = errors.New("conflict")
	// ErrAlreadyDecided — трек уже прошёл модерацию, повторный переход
	// статуса запрещён.
	ErrAlreadyDecided = errors.New("already decided")
	// ErrNotAccepted — публикация в слот дня возможна только для трека
	// в статусе accepted.
	ErrNotAccepted = errors.New("track not accepted")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
)

// TracksStorage описывает операции над сущностью models.Track.
type TracksStorage interface {
	// CreateTrack сохраняет новый трек в статусе pending.
	// Возврат ErrConflict при дубликате netease_id.
	CreateTrack(ctx context.Context, track models.Track) (*models.Track, error)
	// TrackByNeteaseID возвращает трек по внешнему идентификатору.
	// Если запись не найдена — ErrNotFound.
	TrackByNeteaseID(ctx context.Context, neteaseID int64) (*models.Track, error)
	// ListTracksByUser возвращает треки, предложенные пользователем,
	// от новых к старым.
	ListTracksByUser(ctx context.Context, userID uuid.UUID) ([]models.Track, error)
	// ListPendingTracks возвращает страницу треков в статусе pending
	// с offset-пагинацией (start, count), от старых к новым.
	ListPendingTracks(ctx context.Context, start, count int32) ([]models.Track, error)
	// UpdateStatus выполняет одноразовый переход pending -> status и
	// возвращает обновлённый трек. Переход атомарен: из конкурентных
	// вызовов побеждает ровно один.
	// Ошибки: ErrNotFound — трека нет; ErrAlreadyDecided — статус уже
	// не pending.
	UpdateStatus(ctx context.Context, neteaseID int64, status models.ReviewStatus) (*models.Track, error)
	// UpdateCommentCount обновляет кэш числа комментариев и метку
	// последнего обновления. Если трека нет — ErrNotFound.
	UpdateCommentCount(ctx context.Context, id uuid.UUID, count int64, refreshedAt time.Time) error
	// ListStaleTracks возвращает страницу треков, у которых кэш
	// комментариев старше olderThan. Курсор — непрозрачный page_token;
	// при некорректном токене — ErrInvalidCursor.
	ListStaleTracks(ctx context.Context, olderThan time.Time, opts models.ListOptions) (*models.TrackPage, error)
}

// DailyStorage описывает операции над сущностью models.DailyRecommend.
type DailyStorage interface {
	// PublishDaily атомарно публикует accepted-трек в слот даты.
	// Проверка статуса и занятости слота — одним запросом, без
	// read-then-write на стороне сервиса.
	// Ошибки: ErrConflict — слот даты занят или трек уже публиковался;
	// ErrNotAccepted — трек не в статусе accepted; ErrNotFound — трека нет.
	PublishDaily(ctx context.Context, trackID uuid.UUID, date time.Time) (*models.DailyRecommend, error)
	// ListDaily возвращает публикации с датой строго меньше endExclusive
	// (nil — без верхней границы), от новых к старым, не больше limit.
	ListDaily(ctx context.Context, endExclusive *time.Time, limit int32) ([]models.DailyRecommend, error)
}

// MessagesStorage описывает постановку уведомлений в очередь.
type MessagesStorage interface {
	// CreateMessage сохраняет уведомление. Вызывается best-effort:
	// сервис логирует ошибку, но не откатывает принятое решение.
	CreateMessage(ctx context.Context, msg models.Message) error
}

// Storage задаёт контракт доступа к хранилищу для music-сервиса.
type Storage interface {
	TracksStorage
	DailyStorage
	MessagesStorage
	Close()
}
