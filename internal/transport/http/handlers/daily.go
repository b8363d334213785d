package handlers

import (
	"net/http"

	apierrors "github.com/smolentsevaa/go-music-recommend/internal/errors"
)

// ListDaily — GET /music/daily?end_date=&count=
// Публичная история «рекомендаций дня».
func (h *Handlers) ListDaily(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt32(r, "count")
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	items, err := h.Service.ListDaily(r.Context(), r.URL.Query().Get("end_date"), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyListFromModel(items))
}

type repushRequest struct {
	NeteaseID int64 `json:"netease_id"`
}

// RepushDaily — PUT /music/daily
// Повтор публикации accepted-трека после daily_recommend_failed.
func (h *Handlers) RepushDaily(w http.ResponseWriter, r *http.Request) {
	var req repushRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.RepushDaily(r.Context(), req.NeteaseID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okAck())
}
