// models содержит доменные сущности music-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus — статус модерации трека.
//
// Переход допускается ровно один раз: pending -> accepted|rejected.
// Обратных переходов нет, контроль — на уровне хранилища (CAS по статусу).
type ReviewStatus string

const (
	// StatusPending — трек предложен и ждёт решения модератора.
	StatusPending ReviewStatus = "pending"
	// StatusAccepted — трек одобрен.
	StatusAccepted ReviewStatus = "accepted"
	// StatusRejected — трек отклонён.
	StatusRejected ReviewStatus = "rejected"
)

// Track — доменная сущность предложенного трека.
//
// Особенности:
//   - ID — UUIDv4;
//   - NeteaseID — идентификатор трека во внешнем музыкальном сервисе,
//     уникален среди всех треков;
//   - CommentCount — кэшированное число комментариев, периодически
//     обновляется фоновой задачей;
//   - временные метки — в UTC.
type Track struct {
	// ID — уникальный идентификатор трека.
	ID uuid.UUID
	// NeteaseID — идентификатор во внешнем сервисе (уникальный ключ).
	NeteaseID int64
	// Name — название трека.
	Name string
	// Singer — исполнитель.
	Singer string
	// Cover — ссылка на обложку.
	Cover string
	// CommentCount — кэшированное число комментариев у источника.
	CommentCount int64
	// UserID — пользователь, предложивший трек.
	UserID uuid.UUID
	// ReviewStatus — статус модерации.
	ReviewStatus ReviewStatus
	// LastRefreshAt — момент последнего обновления CommentCount (UTC).
	LastRefreshAt time.Time
	// CreatedAt — момент создания записи (UTC).
	CreatedAt time.Time
}

// ListOptions — параметры выборки списков доменных сущностей.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}

// TrackPage — страница треков со ссылкой на продолжение.
type TrackPage struct {
	Items         []Track
	NextPageToken string
}
