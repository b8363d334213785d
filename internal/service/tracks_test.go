package service_test

// Тесты сервисного слоя music-service (internal/service).
//
//  Проверяем:
//  - валидацию входов (SubmitTrack/ListRecommended/Decide/ListPending/ListDaily/RepushDaily);
//  - маппинг ошибок storage -> service (NotFound / AlreadyDecided / Conflict / NotAccepted / Internal);
//  - бизнес-правила: потолок комментариев, плейсхолдер причины отказа,
//    судьбу решения при провале публикации, best-effort уведомления;
//  - happy-path каждого метода.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/service/provider.go -destination=./mocks/provider.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1
//
// Примечание: пакет тестов внешний (service_test), потому что моки
// провайдера импортируют service.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/smolentsevaa/go-music-recommend/internal/config"
	"github.com/smolentsevaa/go-music-recommend/internal/metrics"
	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/service"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
	"github.com/smolentsevaa/go-music-recommend/mocks"
)

// testConfig — конфигурация с дефолтами, близкими к боевым.
func testConfig() config.Config {
	return config.Config{
		Moderation: config.ModerationConfig{
			CommentCeiling: 999,
			EmptyReason:    "не указана",
		},
		Limits: config.LimitsConfig{
			Default: 10,
			Max:     100,
		},
		Refresh: config.RefreshConfig{
			Interval: time.Hour,
			MaxAge:   12 * time.Hour,
			Batch:    2,
		},
	}
}

// newServiceWithMocks — поднимает сервис с моками стораджа и провайдера.
func newServiceWithMocks(t *testing.T) (*service.Service, *mocks.MockStorage, *mocks.MockMusicProvider, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mp := mocks.NewMockMusicProvider(ctrl)
	s := service.New(ms, mp, metrics.New(prometheus.NewRegistry()), testConfig())
	return s, ms, mp, ctrl
}

// mustTrack — быстрый хелпер для сборки трека.
func mustTrack(neteaseID int64, status models.ReviewStatus) *models.Track {
	now := time.Now().UTC()
	return &models.Track{
		ID:            uuid.New(),
		NeteaseID:     neteaseID,
		Name:          "Течение",
		Singer:        "Сплин",
		Cover:         "http://p1.music.example/cover.jpg",
		CommentCount:  42,
		UserID:        uuid.New(),
		ReviewStatus:  status,
		LastRefreshAt: now,
		CreatedAt:     now,
	}
}

// Валидация: пустая ссылка (в т.ч. после TrimSpace), нулевой пользователь.
func TestService_SubmitTrack_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "   ", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: uuid.Nil,
	})
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

// Сбой внешнего сервиса -> ErrLookupFailed, без обращения к сторадж.
func TestService_SubmitTrack_LookupFailed(t *testing.T) {
	s, _, mp, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mp.EXPECT().
		Resolve(gomock.Any(), "https://music.163.com/song?id=42").
		Return(nil, errors.New("upstream down"))

	_, err := s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrLookupFailed)
}

// Потолок комментариев: выше потолка — отказ до создания записи
// (на CreateTrack ожидания нет), ровно на потолке — трек проходит.
func TestService_SubmitTrack_CommentCeiling(t *testing.T) {
	s, ms, mp, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mp.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&service.TrackInfo{NeteaseID: 42, Name: "x", CommentCount: 1000}, nil)

	_, err := s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrCommentTooMuch)

	// ровно 999 — допустимо
	mp.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&service.TrackInfo{NeteaseID: 43, Name: "x", CommentCount: 999}, nil)
	ms.EXPECT().
		CreateTrack(gomock.Any(), gomock.Any()).
		Return(mustTrack(43, models.StatusPending), nil)

	_, err = s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=43", UserID: uuid.New(),
	})
	require.NoError(t, err)
}

// Дубликат netease_id -> ErrConflict; прочие ошибки стораджа -> ErrInternal.
func TestService_SubmitTrack_StorageErrors(t *testing.T) {
	s, ms, mp, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mp.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&service.TrackInfo{NeteaseID: 42, Name: "x", CommentCount: 1}, nil).
		Times(2)

	ms.EXPECT().
		CreateTrack(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrConflict)
	_, err := s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrConflict)

	ms.EXPECT().
		CreateTrack(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))
	_, err = s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrInternal)
}

// Happy-path: метаданные провайдера без изменений попадают в сторадж,
// автор — из входа.
func TestService_SubmitTrack_OK(t *testing.T) {
	s, ms, mp, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	info := &service.TrackInfo{
		NeteaseID:    42,
		Name:         "Течение",
		Singer:       "Сплин",
		Cover:        "http://p1.music.example/cover.jpg",
		CommentCount: 7,
	}

	mp.EXPECT().
		Resolve(gomock.Any(), "https://music.163.com/song?id=42").
		Return(info, nil)

	ms.EXPECT().
		CreateTrack(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, track models.Track) (*models.Track, error) {
			require.Equal(t, int64(42), track.NeteaseID)
			require.Equal(t, "Течение", track.Name)
			require.Equal(t, "Сплин", track.Singer)
			require.Equal(t, int64(7), track.CommentCount)
			require.Equal(t, userID, track.UserID)

			out := track
			out.ID = uuid.New()
			out.ReviewStatus = models.StatusPending
			return &out, nil
		})

	track, err := s.SubmitTrack(context.Background(), service.SubmitTrackInput{
		URL: "https://music.163.com/song?id=42", UserID: userID,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, track.ReviewStatus)
}

// Пустой userID означает «треки самого вызывающего»; если не определить
// никого — ErrInvalidArgument.
func TestService_ListRecommended(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.ListRecommended(context.Background(), uuid.Nil, uuid.Nil)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	caller := uuid.New()
	ms.EXPECT().
		ListTracksByUser(gomock.Any(), caller).
		Return([]models.Track{*mustTrack(42, models.StatusPending)}, nil)

	tracks, err := s.ListRecommended(context.Background(), uuid.Nil, caller)
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	target := uuid.New()
	ms.EXPECT().
		ListTracksByUser(gomock.Any(), target).
		Return(nil, nil)

	_, err = s.ListRecommended(context.Background(), target, caller)
	require.NoError(t, err)
}
