// metrics содержит prometheus-коллекторы music-service.
// Экспонируются через promhttp на служебном HTTP-сервере.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — счётчики бизнес-операций сервиса.
type Metrics struct {
	// Decisions — решения модерации, по результату (accepted/rejected).
	Decisions *prometheus.CounterVec
	// Publications — публикации в слот дня, по результату (ok/failed).
	Publications *prometheus.CounterVec
	// Messages — постановка уведомлений, по типу и результату.
	Messages *prometheus.CounterVec
	// RefreshLookups — обращения к внешнему сервису из фоновой зачистки,
	// по результату (ok/failed).
	RefreshLookups *prometheus.CounterVec
}

// New регистрирует коллекторы в reg и возвращает Metrics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "music",
			Name:      "decisions_total",
			Help:      "Moderation decisions by result.",
		}, []string{"result"}),
		Publications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "music",
			Name:      "daily_publications_total",
			Help:      "Daily slot publications by result.",
		}, []string{"result"}),
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "music",
			Name:      "messages_total",
			Help:      "Notification enqueues by kind and result.",
		}, []string{"kind", "result"}),
		RefreshLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "music",
			Name:      "refresh_lookups_total",
			Help:      "Upstream comment-count lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.Decisions, m.Publications, m.Messages, m.RefreshLookups)

	return m
}
