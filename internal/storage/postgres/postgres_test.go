package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/smolentsevaa/go-music-recommend/internal/models"
	"github.com/smolentsevaa/go-music-recommend/internal/storage"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    CreateTrack: insert и ErrConflict на дубликате netease_id;
//    UpdateStatus: одноразовый CAS pending -> accepted|rejected,
//      ErrAlreadyDecided при повторе, ErrNotFound для неизвестного id;
//    PublishDaily: один слот на дату, одна публикация на трек,
//      ErrNotAccepted для неодобренных;
//    ListPendingTracks/ListTracksByUser: порядок выдачи;
//    ListStaleTracks: keyset-пагинация и выпадение обновлённых строк
//      из предиката устаревания;
//    ListDaily: фильтр end_date (строго меньше) и порядок от новых к старым.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL, применяет миграции и возвращает
// инициализированное хранилище с функцией очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "0001_init.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// mustCreateTrack — вставляет pending-трек.
func mustCreateTrack(t *testing.T, st *Storage, neteaseID int64, userID uuid.UUID) *models.Track {
	t.Helper()

	track, err := st.CreateTrack(context.Background(), models.Track{
		NeteaseID:    neteaseID,
		Name:         fmt.Sprintf("track-%d", neteaseID),
		Singer:       "singer",
		Cover:        "http://cover.example/a.jpg",
		CommentCount: 5,
		UserID:       userID,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, track.ReviewStatus)
	return track
}

func TestIntegration_CreateTrack_And_Conflict(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	created := mustCreateTrack(t, st, 101, userID)

	got, err := st.TrackByNeteaseID(context.Background(), 101)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "track-101", got.Name)
	require.Equal(t, userID, got.UserID)

	// дубликат netease_id
	_, err = st.CreateTrack(context.Background(), models.Track{
		NeteaseID: 101, Name: "dup", UserID: uuid.New(),
	})
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = st.TrackByNeteaseID(context.Background(), 999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateStatus_OneWayCAS(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	mustCreateTrack(t, st, 201, uuid.New())

	track, err := st.UpdateStatus(context.Background(), 201, models.StatusAccepted)
	require.NoError(t, err)
	require.Equal(t, models.StatusAccepted, track.ReviewStatus)

	// повторное решение — в любую сторону — отклоняется
	_, err = st.UpdateStatus(context.Background(), 201, models.StatusRejected)
	require.ErrorIs(t, err, storage.ErrAlreadyDecided)
	_, err = st.UpdateStatus(context.Background(), 201, models.StatusAccepted)
	require.ErrorIs(t, err, storage.ErrAlreadyDecided)

	// неизвестный трек
	_, err = st.UpdateStatus(context.Background(), 999, models.StatusAccepted)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_PublishDaily_SlotInvariants(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	pending := mustCreateTrack(t, st, 301, uuid.New())

	// неодобренный трек публиковать нельзя
	_, err := st.PublishDaily(ctx, pending.ID, day1)
	require.ErrorIs(t, err, storage.ErrNotAccepted)

	// несуществующий трек
	_, err = st.PublishDaily(ctx, uuid.New(), day1)
	require.ErrorIs(t, err, storage.ErrNotFound)

	first, err := st.UpdateStatus(ctx, 301, models.StatusAccepted)
	require.NoError(t, err)

	dr, err := st.PublishDaily(ctx, first.ID, day1)
	require.NoError(t, err)
	require.Equal(t, first.ID, dr.TrackID)
	require.Equal(t, "01.08.2026", dr.ReadableDate())

	// слот даты занят — конфликт для другого accepted-трека
	mustCreateTrack(t, st, 302, uuid.New())
	second, err := st.UpdateStatus(ctx, 302, models.StatusAccepted)
	require.NoError(t, err)

	_, err = st.PublishDaily(ctx, second.ID, day1)
	require.ErrorIs(t, err, storage.ErrConflict)

	// один трек публикуется не больше одного раза
	_, err = st.PublishDaily(ctx, first.ID, day2)
	require.ErrorIs(t, err, storage.ErrConflict)

	// свободная дата + другой трек — ok
	_, err = st.PublishDaily(ctx, second.ID, day2)
	require.NoError(t, err)
}

func TestIntegration_ListPending_And_ListByUser(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	userID := uuid.New()

	first := mustCreateTrack(t, st, 401, userID)
	second := mustCreateTrack(t, st, 402, userID)
	mustCreateTrack(t, st, 403, uuid.New())

	// один из треков выбывает из очереди
	_, err := st.UpdateStatus(ctx, 403, models.StatusRejected)
	require.NoError(t, err)

	// очередь модерации: от старых к новым, с offset
	queue, err := st.ListPendingTracks(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	require.Equal(t, first.ID, queue[0].ID)
	require.Equal(t, second.ID, queue[1].ID)

	tail, err := st.ListPendingTracks(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.Equal(t, second.ID, tail[0].ID)

	// треки пользователя: от новых к старым
	mine, err := st.ListTracksByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, second.ID, mine[0].ID)
	require.Equal(t, first.ID, mine[1].ID)
}

func TestIntegration_ListStaleTracks_KeysetAndFreshness(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	stale := time.Now().UTC().Add(-24 * time.Hour)

	var ids []uuid.UUID
	for i := int64(501); i <= 503; i++ {
		track := mustCreateTrack(t, st, i, uuid.New())
		// состариваем кэш
		require.NoError(t, st.UpdateCommentCount(ctx, track.ID, 5, stale))
		ids = append(ids, track.ID)
	}

	cutoff := time.Now().UTC().Add(-12 * time.Hour)

	// постраничный обход: 2 + 1
	page1, err := st.ListStaleTracks(ctx, cutoff, models.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	require.NotEmpty(t, page1.NextPageToken)

	page2, err := st.ListStaleTracks(ctx, cutoff, models.ListOptions{Limit: 2, PageToken: page1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)

	seen := map[uuid.UUID]bool{}
	for _, it := range append(page1.Items, page2.Items...) {
		seen[it.ID] = true
	}
	for _, id := range ids {
		require.True(t, seen[id], "track %s must be in stale sweep", id)
	}

	// обновлённая строка выпадает из предиката устаревания
	require.NoError(t, st.UpdateCommentCount(ctx, ids[0], 7, time.Now().UTC()))

	fresh, err := st.ListStaleTracks(ctx, cutoff, models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, fresh.Items, 2)
	for _, it := range fresh.Items {
		require.NotEqual(t, ids[0], it.ID)
	}

	// битый курсор
	_, err = st.ListStaleTracks(ctx, cutoff, models.ListOptions{Limit: 2, PageToken: "%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestIntegration_UpdateCommentCount_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.UpdateCommentCount(context.Background(), uuid.New(), 1, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ListDaily_FilterAndOrder(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	dates := []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	}

	for i, date := range dates {
		neteaseID := int64(601 + i)
		mustCreateTrack(t, st, neteaseID, uuid.New())
		track, err := st.UpdateStatus(ctx, neteaseID, models.StatusAccepted)
		require.NoError(t, err)

		_, err = st.PublishDaily(ctx, track.ID, date)
		require.NoError(t, err)
	}

	// без границы: все, от новых к старым, с данными трека
	all, err := st.ListDaily(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "2026-08-03", all[0].RecommendDate.Format("2006-01-02"))
	require.Equal(t, "2026-08-01", all[2].RecommendDate.Format("2006-01-02"))
	require.EqualValues(t, 603, all[0].Track.NeteaseID)

	// строгая граница: записи за end_date в выдачу не попадают
	end := dates[1]
	before, err := st.ListDaily(ctx, &end, 10)
	require.NoError(t, err)
	require.Len(t, before, 1)
	require.Equal(t, "2026-08-01", before[0].RecommendDate.Format("2006-01-02"))

	// лимит
	limited, err := st.ListDaily(ctx, nil, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestIntegration_CreateMessage(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	track := mustCreateTrack(t, st, 701, uuid.New())

	err := st.CreateMessage(ctx, models.Message{
		Kind:    models.KindRecommendRefuse,
		Body:    models.RecommendRefuseBody(track.Name, "не указана"),
		TrackID: track.ID,
		UserID:  track.UserID,
	})
	require.NoError(t, err)
}

// Round-trip непрозрачного токена страницы (без БД).
func TestPageToken_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	token := encodePageToken(id)

	got, err := decodePageToken(token)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = decodePageToken("%%%")
	require.Error(t, err)

	_, err = decodePageToken("bm90LWEtdXVpZA") // base64("not-a-uuid")
	require.Error(t, err)
}
