// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package catalog models the movie and anime catalog OtakuHaven browses.

It defines the Item shape that favorites and watch-history entries embed, the
platform/genre reference tables the discovery filters are built from, and a
client for the remote metadata API.

# Architecture

The catalog is a read-only external collaborator: nothing here mutates the
account store. Items flow from the client into the library services, which
snapshot them inside account records.
*/
package catalog

import "github.com/otakuhaven/otakuhaven/pkg/slug"

// # Domain Entities

// MediaType distinguishes the two halves of the catalog.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeAnime MediaType = "anime"
)

// Item is a single catalog entry as the UI consumes it.
//
// Favorites and watch-history records embed a full Item snapshot rather than
// just an ID, so the library pages render without a second catalog round-trip
// even when the remote API is unreachable.
type Item struct {
	ID          string    `json:"id"`
	MediaType   MediaType `json:"media_type"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
	Year        int       `json:"year,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	GenreIDs    []int     `json:"genre_ids,omitempty"`
}

// WithSlug returns a copy of the item with its Slug derived from the title.
func (i Item) WithSlug() Item {
	i.Slug = slug.From(i.Title)
	return i
}
