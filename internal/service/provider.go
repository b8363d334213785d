package service

import "context"

// TrackInfo — метаданные трека, полученные от внешнего сервиса.
type TrackInfo struct {
	NeteaseID    int64
	Name         string
	Singer       string
	Cover        string
	CommentCount int64
}

// MusicProvider — контракт внешнего музыкального сервиса.
// Реализация — internal/netease. Сервис не ретраит обращения: любой
// сбой транспорта/парсинга доводится до вызывающего как ErrLookupFailed.
type MusicProvider interface {
	// Resolve разбирает ссылку на трек и возвращает метаданные.
	Resolve(ctx context.Context, rawURL string) (*TrackInfo, error)
	// CommentCount возвращает актуальное число комментариев трека.
	// Используется только фоновой зачисткой.
	CommentCount(ctx context.Context, neteaseID int64) (int64, error)
}
