package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smolentsevaa/go-music-recommend/internal/service"
	"github.com/smolentsevaa/go-music-recommend/internal/transport/http/handlers"
	"github.com/smolentsevaa/go-music-recommend/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Identity(),           // вынимаем идентичность из заголовков шлюза
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// музыка: пользовательские операции
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser())
		r.Get("/music/list", h.ListMusic)
		r.Post("/music/recommend", h.RecommendMusic)
	})

	// модерация
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireConsider())
		r.Get("/music/consider", h.ListConsider)
		r.Put("/music/consider", h.DecideConsider)
		r.Put("/music/daily", h.RepushDaily)
	})

	// публичные и служебные
	r.Get("/music/daily", h.ListDaily)
	r.Put("/music/update", h.UpdateMusic)
}
