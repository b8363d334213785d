package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smolentsevaa/go-music-recommend/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"date_format", service.ErrDateFormat, http.StatusBadRequest, "date_format_error"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"permission_denied", ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already_decided", service.ErrAlreadyDecided, http.StatusConflict, "already_decided"},
		{"daily_failed", service.ErrDailyRecommendFailed, http.StatusConflict, "daily_recommend_failed"},
		{"not_accepted", service.ErrNotAccepted, http.StatusConflict, "not_accepted"},
		{"conflict", service.ErrConflict, http.StatusConflict, "conflict"},
		{"comment_too_much", service.ErrCommentTooMuch, http.StatusUnprocessableEntity, "comment_too_much"},
		{"lookup_failed", service.ErrLookupFailed, http.StatusBadGateway, "lookup_failed"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown", stderrors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёртки (fmt.Errorf %w поверх сентинела) маппятся так же, как сам сентинел.
func TestToHTTP_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("service/consider/Decide: %w", service.ErrAlreadyDecided)

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusConflict, gotStatus)
	require.Equal(t, "already_decided", resp.Error.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

// WriteError: корректный статус/Content-Type, request_id из заголовка.
func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-123")

	rr := httptest.NewRecorder()
	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "rid-123", resp.Error.RequestID)
}
