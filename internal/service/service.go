// service содержит бизнес-логику music-service: воркфлоу модерации
// предложенных треков, публикацию в слот «рекомендация дня» и фоновое
// обновление кэша комментариев.
package service

import (
	"errors"

	"github.com/smolentsevaa/go-music-recommend/internal/config"
	"github.com/smolentsevaa/go-music-recommend/internal/metrics"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
)

var (
	// ErrLookupFailed — внешний музыкальный сервис не смог отдать
	// метаданные/число комментариев. Транспорт: 502.
	ErrLookupFailed = errors.New("lookup failed")
	// ErrCommentTooMuch — число комментариев превышает потолок на момент
	// предложения. Транспорт: 422.
	ErrCommentTooMuch = errors.New("comment count over ceiling")
	// ErrConflict — дубликат netease_id при создании. Транспорт: 409.
	ErrConflict = errors.New("conflict")
	// ErrAlreadyDecided — повторное решение по уже отмодерированному
	// треку. Транспорт: 409.
	ErrAlreadyDecided = errors.New("already decided")
	// ErrNotFound — сущность отсутствует. Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrDailyRecommendFailed — решение зафиксировано, но публикация в
	// слот дня не удалась; трек остаётся accepted, публикацию можно
	// повторить отдельно. Транспорт: 409.
	ErrDailyRecommendFailed = errors.New("daily recommend failed")
	// ErrNotAccepted — публикация возможна только для accepted-трека.
	// Транспорт: 409.
	ErrNotAccepted = errors.New("track not accepted")
	// ErrDateFormat — некорректный фильтр даты в списке публикаций.
	// Транспорт: 400.
	ErrDateFormat = errors.New("bad date format")
	// ErrInvalidArgument — некорректные входные аргументы. Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — неожиданная ошибка хранилища/инварианта. Транспорт: 500.
	ErrInternal = errors.New("internal error")
)

// Service — описывает бизнес-логику music-service.
type Service struct {
	storage storage.Storage
	music   MusicProvider
	metrics *metrics.Metrics
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, music MusicProvider, m *metrics.Metrics, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		music:   music,
		metrics: m,
		cfg:     cfg,
	}
}
