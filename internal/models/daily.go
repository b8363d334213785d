package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecommend — публикация трека в слот «рекомендация дня».
//
// Инварианты:
//   - на одну календарную дату — не больше одной публикации;
//   - один трек публикуется не больше одного раза;
//   - создаётся только для трека в статусе accepted и далее неизменяема.
type DailyRecommend struct {
	// ID — уникальный идентификатор публикации.
	ID uuid.UUID
	// TrackID — опубликованный трек.
	TrackID uuid.UUID
	// Track — данные трека (заполняется при выборках с join).
	Track Track
	// RecommendDate — дата слота (компонент времени не используется).
	RecommendDate time.Time
	// CreatedAt — момент публикации (UTC).
	CreatedAt time.Time
}

// ReadableDate возвращает дату слота в человекочитаемом виде
// для текстов уведомлений.
func (d DailyRecommend) ReadableDate() string {
	return d.RecommendDate.Format("02.01.2006")
}
