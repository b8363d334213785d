// netease реализует service.MusicProvider поверх публичного API
// музыкального сервиса NetEase Cloud Music.
//
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.); ретраев нет,
// любой сбой транспорта/парсинга доводится до вызывающего типизированной
// обёрткой.
package netease

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/smolentsevaa/go-music-recommend/internal/service"
)

var (
	// ErrBadTrackURL — из ссылки не извлекается идентификатор трека.
	ErrBadTrackURL = errors.New("bad track url")
	// ErrUpstream — внешний сервис ответил ошибкой или неожиданным телом.
	ErrUpstream = errors.New("upstream error")
)

// trackIDRe вынимает числовой id из ссылок вида
// https://music.163.com/#/song?id=186016 и /song?id=186016&userid=...
var trackIDRe = regexp.MustCompile(`(?:\?|&)id=(\d+)`)

// Client — клиент API NetEase.
type Client struct {
	client  *http.Client
	baseURL string
}

// New создаёт новый клиент. nil client заменяется клиентом с дефолтным
// таймаутом.
func New(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Resolve разбирает ссылку на трек и собирает метаданные: карточку песни
// и текущее число комментариев.
func (c *Client) Resolve(ctx context.Context, rawURL string) (*service.TrackInfo, error) {
	const op = "netease.Resolve"

	id, err := parseTrackID(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	detail, err := c.songDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	total, err := c.CommentCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var singers []string
	for _, a := range detail.Artists {
		if a.Name != "" {
			singers = append(singers, a.Name)
		}
	}

	return &service.TrackInfo{
		NeteaseID:    id,
		Name:         detail.Name,
		Singer:       strings.Join(singers, " / "),
		Cover:        detail.Album.PicURL,
		CommentCount: total,
	}, nil
}

// CommentCount возвращает актуальное число комментариев трека.
func (c *Client) CommentCount(ctx context.Context, neteaseID int64) (int64, error) {
	const op = "netease.CommentCount"

	u := fmt.Sprintf("%s/api/v1/resource/comments/R_SO_4_%d?limit=0", c.baseURL, neteaseID)

	var body commentsResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if body.Code != http.StatusOK {
		return 0, fmt.Errorf("%s: code=%d: %w", op, body.Code, ErrUpstream)
	}

	return body.Total, nil
}

// songDetail возвращает карточку песни по id.
func (c *Client) songDetail(ctx context.Context, neteaseID int64) (*song, error) {
	const op = "netease.songDetail"

	u := fmt.Sprintf("%s/api/song/detail?id=%d&ids=%s",
		c.baseURL, neteaseID, url.QueryEscape(fmt.Sprintf("[%d]", neteaseID)))

	var body songDetailResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if body.Code != http.StatusOK || len(body.Songs) == 0 {
		return nil, fmt.Errorf("%s: code=%d songs=%d: %w", op, body.Code, len(body.Songs), ErrUpstream)
	}

	return &body.Songs[0], nil
}

// getJSON выполняет GET и декодирует JSON-ответ.
func (c *Client) getJSON(ctx context.Context, rawURL string, value any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("new_request: %w", err)
	}
	// Без Referer API отдаёт отказ.
	req.Header.Set("Referer", c.baseURL)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("status=%d: %w", resp.StatusCode, ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(value); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// parseTrackID вынимает идентификатор трека из ссылки.
func parseTrackID(rawURL string) (int64, error) {
	m := trackIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, ErrBadTrackURL
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadTrackURL
	}

	return id, nil
}

type songDetailResponse struct {
	Code  int    `json:"code"`
	Songs []song `json:"songs"`
}

type song struct {
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		PicURL string `json:"picUrl"`
	} `json:"album"`
}

type commentsResponse struct {
	Code  int   `json:"code"`
	Total int64 `json:"total"`
}

// Проверка выполнения контракта сервисного слоя.
var _ service.MusicProvider = (*Client)(nil)
