// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otakuhaven/otakuhaven/pkg/slug"
)

/*
TestFrom verifies slug derivation across plain, accented, punctuated, and
degenerate titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		wanted string
	}{
		{name: "plain title", title: "Attack on Titan", wanted: "attack-on-titan"},
		{name: "accents folded", title: "Pokémon: Détective Pikachu", wanted: "pokemon-detective-pikachu"},
		{name: "punctuation collapses", title: "Re:Zero − Starting Life", wanted: "re-zero-starting-life"},
		{name: "digits kept", title: "Mobile Suit Gundam 00", wanted: "mobile-suit-gundam-00"},
		{name: "leading and trailing junk trimmed", title: "  --One Piece!! ", wanted: "one-piece"},
		{name: "empty title", title: "", wanted: ""},
		{name: "only punctuation", title: "!!!", wanted: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.wanted, slug.From(test.title))
		})
	}
}
