package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/smolentsevaa/go-music-recommend/internal/errors"
	"github.com/smolentsevaa/go-music-recommend/internal/service"
	"github.com/smolentsevaa/go-music-recommend/internal/transport/http/middleware"
)

// ListConsider — GET /music/consider?start=&count=
// Очередь модерации. Право модератора проверяет RequireConsider.
func (h *Handlers) ListConsider(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt32(r, "start")
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	count, err := queryInt32(r, "count")
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	tracks, err := h.Service.ListPending(r.Context(), start, count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tracksFromModel(tracks))
}

type decideRequest struct {
	NeteaseID int64  `json:"netease_id"`
	Accept    bool   `json:"accept"`
	Reason    string `json:"reason,omitempty"`
}

// DecideConsider — PUT /music/consider
// Решение модератора: принять в рекомендацию дня или отклонить.
func (h *Handlers) DecideConsider(w http.ResponseWriter, r *http.Request) {
	reviewer, ok := middleware.UserID(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var req decideRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	err := h.Service.Decide(r.Context(), service.DecideInput{
		NeteaseID:  req.NeteaseID,
		Accept:     req.Accept,
		Reason:     req.Reason,
		ReviewerID: reviewer,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okAck())
}

// queryInt32 разбирает обязательный числовой query-параметр.
func queryInt32(r *http.Request, name string) (int32, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(n), nil
}
