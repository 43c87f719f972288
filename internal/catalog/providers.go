// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package catalog

// # Reference Tables

// Provider is a streaming platform usable as a discovery filter.
type Provider struct {
	// Key is the stable identifier used in URLs and CLI flags.
	Key string `json:"key"`
	// Name is the display name.
	Name string `json:"name"`
	// ProviderID is the remote metadata API watch-provider identifier.
	ProviderID int `json:"provider_id"`
}

// Genre is a catalog genre usable as a discovery filter.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Providers returns the supported streaming platforms in display order.
func Providers() []Provider {
	return []Provider{
		{Key: "netflix", Name: "Netflix", ProviderID: 8},
		{Key: "prime", Name: "Amazon Prime", ProviderID: 9},
		{Key: "disney", Name: "Disney+", ProviderID: 337},
		{Key: "apple", Name: "Apple TV+", ProviderID: 350},
		{Key: "hulu", Name: "Hulu", ProviderID: 15},
		{Key: "hbomax", Name: "Max", ProviderID: 384},
		{Key: "paramount", Name: "Paramount+", ProviderID: 531},
		{Key: "peacock", Name: "Peacock", ProviderID: 386},
	}
}

// ProviderByKey looks up a provider by its stable key.
// The second return value reports whether the key is known.
func ProviderByKey(key string) (Provider, bool) {
	for _, p := range Providers() {
		if p.Key == key {
			return p, true
		}
	}
	return Provider{}, false
}

// Genres returns the genre filters offered by the discovery pages.
func Genres() []Genre {
	return []Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
		{ID: 18, Name: "Drama"},
		{ID: 27, Name: "Horror"},
		{ID: 10749, Name: "Romance"},
		{ID: 878, Name: "Science Fiction"},
	}
}
