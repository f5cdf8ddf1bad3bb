package three

import (
	"fmt"

	"github.com/abhisek/yakustat/internal/tile"
)

// Tile is one of the 23 kinds of the three-meld family. In this family the
// three colored honors play the role of winds and Sun and Moon are the
// dragons.
type Tile uint8

const (
	Sun Tile = iota
	Moon
	Red
	Green
	White
	B1
	B2
	B3
	B4
	B5
	B6
	C1
	C2
	C3
	C4
	C5
	C6
	D1
	D2
	D3
	D4
	D5
	D6
)

const (
	Kinds = 23
	Ranks = 6

	honors = 5
)

var honorNames = [honors]string{"Sun", "Moon", "Red", "Green", "White"}

// AllTiles lists every tile in code order.
var AllTiles = func() []Tile {
	out := make([]Tile, Kinds)
	for i := range out {
		out[i] = Tile(i)
	}
	return out
}()

// Codec is the corpus byte table: 'A' for Sun through 'W' for D6.
var Codec = tile.NewCodec(AllTiles, tile.Sequential(Kinds))

func (t Tile) Color() tile.Color {
	switch {
	case t < B1:
		return tile.Honor
	case t < C1:
		return tile.Bamboo
	case t < D1:
		return tile.Character
	default:
		return tile.Dot
	}
}

func (t Tile) Number() int {
	if t < B1 {
		return int(t) + 1
	}
	return int(t-B1)%Ranks + 1
}

func (t Tile) IsHonor() bool { return t < B1 }

func (t Tile) IsAscending(next Tile) bool {
	return !t.IsHonor() && t.Number() != Ranks && next == t+1
}

func (t Tile) IsTerminal() bool {
	if t.IsHonor() {
		return false
	}
	n := t.Number()
	return n == 1 || n == Ranks
}

func (t Tile) IsSimple() bool { return !t.IsHonor() && !t.IsTerminal() }

func (t Tile) IsWind() bool { return t >= Red && t <= White }

func (t Tile) IsDragon() bool { return t <= Moon }

func (t Tile) MaxRank() int { return Ranks }

func (t Tile) String() string {
	switch {
	case t.IsHonor():
		return honorNames[t]
	case t > D6:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	case t.Color() == tile.Bamboo:
		return fmt.Sprintf("B%d", t.Number())
	case t.Color() == tile.Character:
		return fmt.Sprintf("C%d", t.Number())
	default:
		return fmt.Sprintf("D%d", t.Number())
	}
}
