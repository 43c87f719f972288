// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureMovies = `{
	"results": [
		{
			"id": 872585,
			"title": "Attack on Titan",
			"release_date": "2013-04-07",
			"overview": "Humanity behind walls.",
			"poster_path": "/aot.jpg",
			"backdrop_path": "/aot-backdrop.jpg",
			"vote_average": 8.7,
			"genre_ids": [28, 18]
		},
		{
			"id": 1429,
			"name": "One Piece",
			"first_air_date": "1999-10-20",
			"overview": "Pirates chase a treasure.",
			"vote_average": 8.9
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(server.URL, "test-key", log)
}

/*
TestClient_Search verifies the query wiring and the reconciliation of the
movie/TV field variants into catalog items.
*/
func TestClient_Search(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 1. The endpoint and query parameters carry the search text and key.
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "titan", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(fixtureMovies))
	})

	items, err := client.Search(ctx, "titan")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 2. Movie variant: title, release date, image prefixes, slug.
	movie := items[0]
	assert.Equal(t, "872585", movie.ID)
	assert.Equal(t, "Attack on Titan", movie.Title)
	assert.Equal(t, "attack-on-titan", movie.Slug)
	assert.Equal(t, 2013, movie.Year)
	assert.Equal(t, 8.7, movie.Rating)
	assert.Equal(t, []int{28, 18}, movie.GenreIDs)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/aot.jpg", movie.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/aot-backdrop.jpg", movie.BackdropURL)

	// 3. TV variant: name and first_air_date fill title and year; absent
	// image paths stay empty rather than becoming a bare prefix.
	show := items[1]
	assert.Equal(t, "One Piece", show.Title)
	assert.Equal(t, "one-piece", show.Slug)
	assert.Equal(t, 1999, show.Year)
	assert.Empty(t, show.PosterURL)
	assert.Empty(t, show.BackdropURL)
}

/*
TestClient_Trending verifies window validation falls back to "day" for
unknown values.
*/
func TestClient_Trending(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		window     string
		wantedPath string
	}{
		{name: "day window", window: "day", wantedPath: "/trending/movie/day"},
		{name: "week window", window: "week", wantedPath: "/trending/movie/week"},
		{name: "unknown window falls back to day", window: "fortnight", wantedPath: "/trending/movie/day"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotPath string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"results": []}`))
			})

			items, err := client.Trending(ctx, test.window)
			require.NoError(t, err)
			assert.Empty(t, items)
			assert.Equal(t, test.wantedPath, gotPath)
		})
	}
}

/*
TestClient_Discover verifies provider and genre filters are forwarded, and
that a zero genre omits the genre filter entirely.
*/
func TestClient_Discover(t *testing.T) {
	ctx := context.Background()

	t.Run("with genre", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "/discover/movie", r.URL.Path)
			assert.Equal(t, "8", query.Get("with_watch_providers"))
			assert.Equal(t, "US", query.Get("watch_region"))
			assert.Equal(t, "popularity.desc", query.Get("sort_by"))
			assert.Equal(t, "28", query.Get("with_genres"))
			_, _ = w.Write([]byte(`{"results": []}`))
		})

		_, err := client.Discover(ctx, 8, 28)
		require.NoError(t, err)
	})

	t.Run("without genre", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("with_genres"))
			_, _ = w.Write([]byte(`{"results": []}`))
		})

		_, err := client.Discover(ctx, 8, 0)
		require.NoError(t, err)
	})
}

/*
TestClient_RemoteFailure verifies non-OK statuses and malformed payloads
surface as errors instead of empty results.
*/
func TestClient_RemoteFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("non-OK status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Search(ctx, "titan")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := client.Search(ctx, "titan")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog_decode_failed")
	})
}

/*
TestProviderByKey verifies provider lookup by key.
*/
func TestProviderByKey(t *testing.T) {
	provider, found := ProviderByKey("netflix")
	require.True(t, found)
	assert.Equal(t, 8, provider.ProviderID)

	_, found = ProviderByKey("blockbuster")
	assert.False(t, found)
}
