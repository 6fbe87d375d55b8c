package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Record(ctx, Visit{HashedIP: "a", Path: "/en", Locale: "en", Timestamp: now}))
	require.NoError(t, store.Record(ctx, Visit{HashedIP: "a", Path: "/ar", Locale: "ar", Timestamp: now}))
	require.NoError(t, store.Record(ctx, Visit{HashedIP: "b", Path: "/en", Locale: "en", Timestamp: now.Add(-30 * 24 * time.Hour)}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsThisWeek)
	assert.EqualValues(t, 2, stats.ByLocale["en"])
	assert.EqualValues(t, 1, stats.ByLocale["ar"])
	assert.Len(t, stats.RecentVisitors, 3)
}

func TestDeleteOlderThan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Record(ctx, Visit{HashedIP: "old", Locale: "en", Timestamp: now.Add(-400 * 24 * time.Hour)}))
	require.NoError(t, store.Record(ctx, Visit{HashedIP: "new", Locale: "en", Timestamp: now}))

	r, err := NewRetention(store, 365*24*time.Hour, "@daily")
	require.NoError(t, err)
	n, err := r.Cleanup(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}

func TestRetentionStartCleansImmediately(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, Visit{HashedIP: "old", Locale: "ar", Timestamp: time.Now().Add(-48 * time.Hour)}))

	r, err := NewRetention(store, 24*time.Hour, "@daily")
	require.NoError(t, err)
	r.Start()
	r.Stop()

	visits, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestNewRetentionRejectsBadSchedule(t *testing.T) {
	_, err := NewRetention(openTestStore(t), time.Hour, "not a schedule")
	assert.Error(t, err)
}

func TestHashIPStableAndTruncated(t *testing.T) {
	tr := NewTracker(nil)
	h := tr.HashIP("10.0.0.1")
	assert.Len(t, h, 16)
	assert.Equal(t, h, tr.HashIP("10.0.0.1"))
	assert.NotEqual(t, h, tr.HashIP("10.0.0.2"))
	assert.NotEqual(t, h, NewTracker(nil).HashIP("10.0.0.1"))
}

func TestShouldTrack(t *testing.T) {
	assert.True(t, ShouldTrack("/en"))
	assert.True(t, ShouldTrack("/ar/"))
	assert.False(t, ShouldTrack("/static/site.css"))
	assert.False(t, ShouldTrack("/admin/dashboard"))
	assert.False(t, ShouldTrack("/api/en/content"))
}

func newTrackedRouter(tr *Tracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(tr.Middleware())
	r.GET("/:lang", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestMiddlewareRecordsPageViews(t *testing.T) {
	store := openTestStore(t)
	tr := NewTracker(store)
	r := newTrackedRouter(tr)

	req := httptest.NewRequest(http.MethodGet, "/ar", nil)
	req.Header.Set("User-Agent", "test-agent")
	r.ServeHTTP(httptest.NewRecorder(), req)
	tr.Wait()

	visits, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/ar", visits[0].Path)
	assert.Equal(t, "ar", visits[0].Locale)
	assert.Equal(t, "test-agent", visits[0].UserAgent)
	assert.NotContains(t, visits[0].HashedIP, "192.0.2.1")
}

func TestMiddlewareHonorsDoNotTrack(t *testing.T) {
	store := openTestStore(t)
	tr := NewTracker(store)
	r := newTrackedRouter(tr)

	req := httptest.NewRequest(http.MethodGet, "/en", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	tr.Wait()

	visits, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, visits)
}
