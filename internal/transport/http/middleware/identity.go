package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/smolentsevaa/go-music-recommend/internal/errors"
)

// Аутентификация — забота вышестоящего шлюза: сюда запрос приходит
// уже с проверенной идентичностью в заголовках.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	// RoleConsider — роль модератора (право решать судьбу треков).
	RoleConsider = "consider"
)

const (
	// CtxUserID — ключ контекста с uuid.UUID пользователя.
	CtxUserID = contextKey("user_id")
	// CtxUserRole — ключ контекста с ролью пользователя.
	CtxUserRole = contextKey("user_role")
)

// Identity извлекает идентичность из X-User-Id/X-User-Role и кладёт её
// в контекст. Некорректный или отсутствующий заголовок просто не
// наполняет контекст — отказ отдают Require*-мидлвары на нужных роутах.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw := strings.TrimSpace(r.Header.Get(headerUserID)); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					ctx = context.WithValue(ctx, CtxUserID, id)
				}
			}

			if role := strings.TrimSpace(r.Header.Get(headerUserRole)); role != "" {
				ctx = context.WithValue(ctx, CtxUserRole, role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает пользователя из контекста.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(CtxUserID).(uuid.UUID)
	return id, ok
}

// HasConsider сообщает, есть ли у пользователя право модератора.
func HasConsider(ctx context.Context) bool {
	role, _ := ctx.Value(CtxUserRole).(string)
	return role == RoleConsider
}

// RequireUser отклоняет запросы без идентичности (401).
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserID(r.Context()); !ok {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireConsider отклоняет запросы без идентичности (401) или без
// права модератора (403).
func RequireConsider() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserID(r.Context()); !ok {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}
			if !HasConsider(r.Context()) {
				apierrors.WriteError(w, r, apierrors.ErrPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
