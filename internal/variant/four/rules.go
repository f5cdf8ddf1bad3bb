// Package four implements the 14-tile, four-meld rule family.
package four

import "github.com/abhisek/yakustat/internal/engine"

// Arity is the number of melds in a hand.
const Arity = 4

// Rules is the family's analysis entry point.
var Rules = &engine.Rules[Tile]{
	Family:      "four",
	Arity:       Arity,
	Codec:       Codec,
	Table:       Catalogue,
	DefaultWind: East,
	Classify:    Classify,
}
