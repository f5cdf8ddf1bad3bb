// Package three implements the 11-tile, three-meld rule family.
package three

import "github.com/abhisek/yakustat/internal/engine"

// Arity is the number of melds in a hand.
const Arity = 3

// Rules is the family's analysis entry point.
var Rules = &engine.Rules[Tile]{
	Family:      "three",
	Arity:       Arity,
	Codec:       Codec,
	Table:       Catalogue,
	DefaultWind: Red,
	Classify:    Classify,
}
