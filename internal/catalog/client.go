// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	stdctx "context"

	"golang.org/x/time/rate"

	"github.com/otakuhaven/otakuhaven/internal/platform/constants"
)

// # Metadata Client

// requestsPerSecond keeps the client inside the remote API's published
// allowance (40 requests per 10 seconds) with headroom for other consumers.
const (
	requestsPerSecond = 3
	requestBurst      = 6
	requestTimeout    = 10 * time.Second
)

// Client talks to the remote movie/anime metadata API.
//
// All calls are paced through a shared [rate.Limiter] so bursts of UI
// navigation never trip the remote quota.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
	limiter      *rate.Limiter
	log          *slog.Logger
}

// NewClient constructs a metadata client.
//
// baseURL may be empty, in which case the production API root is used.
func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = constants.CatalogBaseURL
	}
	return &Client{
		baseURL:      baseURL,
		imageBaseURL: constants.CatalogImageBaseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: requestTimeout},
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		log:          log,
	}
}

// # Wire Shapes

// listResponse is the common paged envelope of the remote API.
type listResponse struct {
	Results []entry `json:"results"`
}

// entry is one remote catalog record. Movies and TV differ in field names,
// so both variants are decoded and reconciled in toItem.
type entry struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`          // Movies
	Name         string  `json:"name"`           // TV
	ReleaseDate  string  `json:"release_date"`   // Movies
	FirstAirDate string  `json:"first_air_date"` // TV
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// # Operations

/*
Trending returns the trending movies for the given time window.

Parameters:
  - context: context.Context
  - window: "day" or "week"

Returns:
  - []Item: Catalog items, newest trend first
  - error: Remote API or transport failures
*/
func (client *Client) Trending(context stdctx.Context, window string) ([]Item, error) {
	if window != "day" && window != "week" {
		window = "day"
	}
	return client.list(context, "/trending/movie/"+window, url.Values{})
}

/*
Discover returns movies available on a streaming provider, optionally
narrowed to a genre (genreID 0 means no genre filter).

Parameters:
  - context: context.Context
  - providerID: int
  - genreID: int

Returns:
  - []Item: Catalog items by popularity
  - error: Remote API or transport failures
*/
func (client *Client) Discover(context stdctx.Context, providerID, genreID int) ([]Item, error) {
	query := url.Values{}
	query.Set("with_watch_providers", strconv.Itoa(providerID))
	query.Set("watch_region", "US")
	query.Set("sort_by", "popularity.desc")
	if genreID > 0 {
		query.Set("with_genres", strconv.Itoa(genreID))
	}
	return client.list(context, "/discover/movie", query)
}

/*
Search returns catalog items matching a free-text query.

Parameters:
  - context: context.Context
  - queryText: string

Returns:
  - []Item: Matching items by relevance
  - error: Remote API or transport failures
*/
func (client *Client) Search(context stdctx.Context, queryText string) ([]Item, error) {
	query := url.Values{}
	query.Set("query", queryText)
	return client.list(context, "/search/movie", query)
}

// # Transport

// list performs a paced GET against the given endpoint and maps the results.
func (client *Client) list(context stdctx.Context, endpoint string, query url.Values) ([]Item, error) {

	// Pace the request. Wait returns early if the context is done.
	if err := client.limiter.Wait(context); err != nil {
		return nil, fmt.Errorf("catalog_rate_wait_failed: %w", err)
	}

	u, err := url.Parse(client.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("catalog_url_invalid: %w", err)
	}
	query.Set("api_key", client.apiKey)
	u.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(context, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog_request_build_failed: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("catalog_request_failed: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		client.log.Warn("catalog_api_non_ok",
			slog.String("endpoint", endpoint),
			slog.Int("status", response.StatusCode),
		)
		return nil, fmt.Errorf("catalog: remote API returned %d", response.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog_decode_failed: %w", err)
	}

	items := make([]Item, 0, len(payload.Results))
	for _, e := range payload.Results {
		items = append(items, client.toItem(e))
	}
	return items, nil
}

// toItem reconciles the movie/TV field variants into a single Item.
func (client *Client) toItem(e entry) Item {
	title := e.Title
	if title == "" {
		title = e.Name
	}

	dateStr := e.ReleaseDate
	if dateStr == "" {
		dateStr = e.FirstAirDate
	}
	year := 0
	if date, err := time.Parse("2006-01-02", dateStr); err == nil {
		year = date.Year()
	}

	item := Item{
		ID:        strconv.Itoa(e.ID),
		MediaType: MediaTypeMovie,
		Title:     title,
		Overview:  e.Overview,
		Year:      year,
		Rating:    e.VoteAverage,
		GenreIDs:  e.GenreIDs,
	}
	if e.PosterPath != "" {
		item.PosterURL = client.imageBaseURL + e.PosterPath
	}
	if e.BackdropPath != "" {
		item.BackdropURL = client.imageBaseURL + e.BackdropPath
	}
	return item.WithSlug()
}
