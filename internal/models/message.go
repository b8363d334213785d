package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageKind — тип внутреннего уведомления пользователю.
type MessageKind string

const (
	// KindPushDailyFail — модератору: одобренный трек не удалось
	// опубликовать в слот дня.
	KindPushDailyFail MessageKind = "push_daily_fail"
	// KindRecommendAccept — автору: трек принят и опубликован.
	KindRecommendAccept MessageKind = "recommend_accept"
	// KindRecommendRefuse — автору: трек отклонён.
	KindRecommendRefuse MessageKind = "recommend_refuse"
)

// Message — уведомление, создаваемое воркфлоу модерации.
// Хранение и доставка — забота отдельного стора, постановка
// в очередь best-effort и не участвует в транзакции решения.
type Message struct {
	// ID — уникальный идентификатор уведомления.
	ID uuid.UUID
	// Kind — тип уведомления.
	Kind MessageKind
	// Body — готовый текст.
	Body string
	// TrackID — трек, к которому относится уведомление.
	TrackID uuid.UUID
	// UserID — получатель.
	UserID uuid.UUID
	// CreatedAt — момент создания (UTC).
	CreatedAt time.Time
}

// Шаблоны текстов по типам уведомлений.

// PushDailyFailBody — текст для KindPushDailyFail.
func PushDailyFailBody(trackName string) string {
	return fmt.Sprintf("Не удалось опубликовать «%s» в рекомендацию дня", trackName)
}

// RecommendAcceptBody — текст для KindRecommendAccept.
func RecommendAcceptBody(trackName, readableDate string) string {
	return fmt.Sprintf("Ваш трек «%s» принят и станет рекомендацией дня %s", trackName, readableDate)
}

// RecommendRefuseBody — текст для KindRecommendRefuse.
// reason к этому моменту уже нормализован сервисом (пустая причина
// заменена на плейсхолдер из конфигурации).
func RecommendRefuseBody(trackName, reason string) string {
	return fmt.Sprintf("Ваш трек «%s» отклонён. Причина: %s", trackName, reason)
}
