package four

import (
	"fmt"

	"github.com/abhisek/yakustat/internal/tile"
)

// Tile is one of the 34 kinds of the four-meld family.
type Tile uint8

const (
	Red Tile = iota
	Green
	White
	East
	South
	West
	North
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
)

const (
	// Kinds is the number of distinct tiles.
	Kinds = 34
	// Ranks is the number of ranks in each suit.
	Ranks = 9

	honors = 7
)

var honorNames = [honors]string{"Red", "Green", "White", "East", "South", "West", "North"}

// AllTiles lists every tile in code order.
var AllTiles = func() []Tile {
	out := make([]Tile, Kinds)
	for i := range out {
		out[i] = Tile(i)
	}
	return out
}()

// Codec is the corpus byte table: 'A' for Red through 'b' for D9.
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

func (t Tile) IsWind() bool { return t >= East && t <= North }

func (t Tile) IsDragon() bool { return t <= White }

func (t Tile) MaxRank() int { return Ranks }

func (t Tile) String() string {
	switch t.Color() {
	case tile.Honor:
		return honorNames[t]
	case tile.Bamboo:
		return fmt.Sprintf("B%d", t.Number())
	case tile.Character:
		return fmt.Sprintf("C%d", t.Number())
	default:
		if t > D9 {
			return fmt.Sprintf("Tile(%d)", uint8(t))
		}
		return fmt.Sprintf("D%d", t.Number())
	}
}
