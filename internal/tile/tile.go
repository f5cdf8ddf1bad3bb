// Package tile defines the pieces shared by every tile family: suit colors,
// the generic constraint the engines are written against, and the byte codec
// used by corpus files.
package tile

// Color is the suit of a tile. Honors have no rank.
type Color uint8

const (
	Honor Color = iota
	Bamboo
	Character
	Dot
)

func (c Color) String() string {
	switch c {
	case Honor:
		return "honor"
	case Bamboo:
		return "bamboo"
	case Character:
		return "character"
	case Dot:
		return "dot"
	}
	return "unknown"
}

// Kind is the constraint satisfied by a tile enum. The underlying value is
// the enum index, so successor arithmetic (t+1) is meaningful only after
// IsAscending has confirmed it.
type Kind[T any] interface {
	~uint8
	Color() Color
	// Number is the rank for suited tiles and the family's ordinal for honors.
	Number() int
	// IsAscending reports whether next is the same-suit successor of the
	// receiver. Honors and the top rank never ascend.
	IsAscending(next T) bool
	IsHonor() bool
	IsTerminal() bool
	IsSimple() bool
	IsWind() bool
	IsDragon() bool
	// MaxRank is the highest rank of a suited tile in the family.
	MaxRank() int
	String() string
}
