package handlers

import (
	"time"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
)

// DTO публичного API. Времена — RFC3339 UTC, дата слота — YYYY-MM-DD.

type trackResponse struct {
	ID            string `json:"id"`
	NeteaseID     int64  `json:"netease_id"`
	Name          string `json:"name"`
	Singer        string `json:"singer"`
	Cover         string `json:"cover"`
	CommentCount  int64  `json:"comment_count"`
	UserID        string `json:"user_id"`
	ReviewStatus  string `json:"review_status"`
	LastRefreshAt string `json:"last_refresh_at"`
	CreatedAt     string `json:"created_at"`
}

type dailyResponse struct {
	ID            string        `json:"id"`
	RecommendDate string        `json:"recommend_date"`
	ReadableDate  string        `json:"readable_date"`
	Track         trackResponse `json:"track"`
}

func trackFromModel(t models.Track) trackResponse {
	return trackResponse{
		ID:            t.ID.String(),
		NeteaseID:     t.NeteaseID,
		Name:          t.Name,
		Singer:        t.Singer,
		Cover:         t.Cover,
		CommentCount:  t.CommentCount,
		UserID:        t.UserID.String(),
		ReviewStatus:  string(t.ReviewStatus),
		LastRefreshAt: t.LastRefreshAt.UTC().Format(time.RFC3339),
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func tracksFromModel(items []models.Track) []trackResponse {
	out := make([]trackResponse, 0, len(items))
	for _, t := range items {
		out = append(out, trackFromModel(t))
	}
	return out
}

func dailyFromModel(d models.DailyRecommend) dailyResponse {
	return dailyResponse{
		ID:            d.ID.String(),
		RecommendDate: d.RecommendDate.Format("2006-01-02"),
		ReadableDate:  d.ReadableDate(),
		Track:         trackFromModel(d.Track),
	}
}

func dailyListFromModel(items []models.DailyRecommend) []dailyResponse {
	out := make([]dailyResponse, 0, len(items))
	for _, d := range items {
		out = append(out, dailyFromModel(d))
	}
	return out
}
