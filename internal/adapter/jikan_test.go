package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
)

func newTestCatalog(t *testing.T, handler http.Handler) (*JikanCatalog, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	catalog, err := NewJikanCatalog(config.Catalog{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
		CacheTTL:       5 * time.Minute,
	}, logger.Nop())
	require.NoError(t, err)

	return catalog, server
}

func TestJikanCatalog_Top(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/top/anime", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"data":[{"mal_id":21,"title":"One Piece","score":8.7},{"mal_id":5114,"title":"Fullmetal Alchemist: Brotherhood","score":9.1}]}`)
	}))

	list, err := catalog.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(21), list[0].MalID)
	assert.Equal(t, "One Piece", list[0].Title)
	assert.Equal(t, int32(1), calls.Load())
}

func TestJikanCatalog_CachedResponseSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"data":[{"mal_id":21,"title":"One Piece"}]}`)
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		list, err := catalog.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}

	assert.Equal(t, int32(1), calls.Load(), "repeated identical requests must be served from cache")
}

func TestJikanCatalog_ExpiredCacheEntryRefetches(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"data":[]}`)
	}))

	now := time.Now()
	catalog.cache.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := catalog.Top(ctx, 10)
	require.NoError(t, err)

	// move past the TTL
	now = now.Add(6 * time.Minute)

	_, err = catalog.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestJikanCatalog_DifferentParamsAreCachedSeparately(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"data":[]}`)
	}))

	ctx := context.Background()
	_, err := catalog.Top(ctx, 10)
	require.NoError(t, err)
	_, err = catalog.Top(ctx, 25)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestJikanCatalog_ByID(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/21/full", r.URL.Path)
		fmt.Fprint(w, `{"data":{"mal_id":21,"title":"One Piece","title_english":"One Piece","members":2500000}}`)
	}))

	anime, err := catalog.ByID(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, int64(21), anime.MalID)
	assert.Equal(t, int64(2500000), anime.Members)
}

func TestJikanCatalog_ByID_NotFound(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := catalog.ByID(context.Background(), 999999999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrFetchFailed)
}

func TestJikanCatalog_ServerErrorIsDistinguishable(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := catalog.Top(context.Background(), 10)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestJikanCatalog_MalformedBodyIsDistinguishable(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data": not-json`)
	}))

	_, err := catalog.Top(context.Background(), 10)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestJikanCatalog_FailedResponseIsNotCached(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	}))

	ctx := context.Background()
	_, err := catalog.Top(ctx, 10)
	require.ErrorIs(t, err, ErrFetchFailed)

	_, err = catalog.Top(ctx, 10)
	require.NoError(t, err, "a failed fetch must not poison the cache")
	assert.Equal(t, int32(2), calls.Load())
}

func TestJikanCatalog_Search_ShortQuerySkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"data":[]}`)
	}))

	ctx := context.Background()
	for _, query := range []string{"", "a", "ab", "  ab  "} {
		list, err := catalog.Search(ctx, query, 20)
		require.NoError(t, err)
		assert.Empty(t, list)
	}

	assert.Equal(t, int32(0), calls.Load())
}

func TestJikanCatalog_Search(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime", r.URL.Path)
		assert.Equal(t, "naruto", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"data":[{"mal_id":20,"title":"Naruto"}]}`)
	}))

	list, err := catalog.Search(context.Background(), "  naruto ", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Naruto", list[0].Title)
}

func TestJikanCatalog_LeastPopular_DropsZeroMembersAndTruncates(t *testing.T) {
	catalog, _ := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "members", r.URL.Query().Get("order_by"))
		assert.Equal(t, "asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "6", r.URL.Query().Get("limit"), "twice the requested amount is over-fetched")
		fmt.Fprint(w, `{"data":[
			{"mal_id":1,"title":"no audience data"},
			{"mal_id":2,"title":"tiny","members":3},
			{"mal_id":3,"title":"small","members":10},
			{"mal_id":4,"title":"also zero","members":0},
			{"mal_id":5,"title":"medium","members":40},
			{"mal_id":6,"title":"larger","members":90}
		]}`)
	}))

	list, err := catalog.LeastPopular(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, anime := range list {
		assert.Positive(t, anime.Members, "entry %d must have a member count", i)
	}
	assert.Equal(t, int64(2), list[0].MalID)
	assert.Equal(t, int64(5), list[2].MalID)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"already normalized", "https://api.jikan.moe/v4", "https://api.jikan.moe/v4", false},
		{"trailing slash trimmed", "https://api.jikan.moe/v4/", "https://api.jikan.moe/v4", false},
		{"scheme added", "api.jikan.moe/v4", "https://api.jikan.moe/v4", false},
		{"empty", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
