package handlers

import (
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/smolentsevaa/go-music-recommend/internal/errors"
	"github.com/smolentsevaa/go-music-recommend/internal/service"
	"github.com/smolentsevaa/go-music-recommend/internal/transport/http/middleware"
)

// ListMusic — GET /music/list?user_id=
// Треки, предложенные пользователем user_id; пустой user_id — свои.
func (h *Handlers) ListMusic(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserID(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var userID uuid.UUID
	if v := r.URL.Query().Get("user_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		userID = parsed
	}

	tracks, err := h.Service.ListRecommended(r.Context(), userID, caller)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tracksFromModel(tracks))
}

type recommendRequest struct {
	URL string `json:"url"`
}

// RecommendMusic — POST /music/recommend
// Пользователь предлагает трек по ссылке.
func (h *Handlers) RecommendMusic(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserID(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var req recommendRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	track, err := h.Service.SubmitTrack(r.Context(), service.SubmitTrackInput{
		URL:    req.URL,
		UserID: caller,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trackFromModel(*track))
}

type updateResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// UpdateMusic — PUT /music/update
// Один проход обновления кэша комментариев.
func (h *Handlers) UpdateMusic(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.RefreshComments(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updateResponse{
		Scanned: stats.Scanned,
		Updated: stats.Updated,
		Failed:  stats.Failed,
	})
}
