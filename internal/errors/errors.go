// errors стандартизирует ответы об ошибках HTTP-слоя music-service.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткий машиночитаемый код и безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинел-ошибки internal/service.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/smolentsevaa/go-music-recommend/internal/service"
)

// Ошибки транспортного края: ставятся middleware до вызова сервиса.
var (
	// ErrUnauthenticated — запрос без идентичности пользователя.
	ErrUnauthenticated = stderrors.New("unauthenticated")
	// ErrPermissionDenied — у пользователя нет права модератора.
	ErrPermissionDenied = stderrors.New("permission denied")
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг ошибок сервиса -> HTTP/FE-код/сообщение.
//
// Таблица:
//   - invalid_argument (битые входные) -> 400
//   - date_format_error (битый фильтр даты) -> 400
//   - unauthenticated -> 401
//   - permission_denied -> 403
//   - not_found -> 404
//   - conflict / already_decided / not_accepted -> 409
//   - daily_recommend_failed -> 409 (решение уже зафиксировано, см. сервис)
//   - comment_too_much -> 422
//   - lookup_failed (сбой внешнего сервиса) -> 502
//   - deadline_exceeded -> 504
//   - прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrDateFormat):
		return http.StatusBadRequest, "date_format_error", "bad date format"
	case stderrors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case stderrors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, service.ErrAlreadyDecided):
		return http.StatusConflict, "already_decided", "track already decided"
	case stderrors.Is(err, service.ErrDailyRecommendFailed):
		return http.StatusConflict, "daily_recommend_failed", "decision committed, daily publication failed"
	case stderrors.Is(err, service.ErrNotAccepted):
		return http.StatusConflict, "not_accepted", "track not accepted"
	case stderrors.Is(err, service.ErrConflict):
		return http.StatusConflict, "conflict", "conflict"
	case stderrors.Is(err, service.ErrCommentTooMuch):
		return http.StatusUnprocessableEntity, "comment_too_much", "comment count over ceiling"
	case stderrors.Is(err, service.ErrLookupFailed):
		return http.StatusBadGateway, "lookup_failed", "upstream lookup failed"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
