package four

import (
	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/yaku"
)

type (
	tileSet  = meld.Set[Tile]
	meldList = []meld.Meld[Tile]
	tileMeld = meld.Meld[Tile]
)

// Classify returns the categories s satisfies. The groups run in a fixed
// order and most stop at their first hit; later groups read categories set
// by earlier ones. provenance enables the revealed/concealed and kong
// categories, which only mean something after reveal expansion.
func Classify(s tileSet, provenance bool) yaku.List {
	var l yaku.List
	ms := s.Melds()

	shape(&l, ms)
	scoredPungs(&l, s)
	honorGroup(&l, s)
	straightAndOutside(&l, s)
	suits(&l, s)
	concealedPungs(&l, ms)
	sameChows(&l, ms)
	shiftedPungs(&l, ms)
	if provenance {
		origin(&l, s)
	}

	if l.Has(AllHonors) {
		l.Only(AllHonors)
	}
	if l.Empty() {
		l.Set(NoPoint)
	}
	return l
}

func shape(l *yaku.List, ms meldList) {
	switch {
	case yaku.AllChows(ms):
		l.Set(AllChows)
	case yaku.AllPungs(ms):
		l.Set(AllPungs)
	}
}

func scoredPungs(l *yaku.List, s tileSet) {
	for _, m := range s.Melds() {
		if !m.Kind.IsPung() {
			continue
		}
		switch m.Head {
		case Red:
			l.Set(RedPung)
		case Green:
			l.Set(GreenPung)
		case White:
			l.Set(WhitePung)
		case s.Wind:
			l.Set(WindPung)
		}
	}
}

func honorGroup(l *yaku.List, s tileSet) {
	ms := s.Melds()

	switch winds := yaku.HeadsIn(ms, Tile.IsWind); {
	case winds == 4:
		l.Set(BigFourWinds)
		return
	case winds == 3 && s.Pair.Head.IsWind():
		l.Set(LittleFourWinds)
		return
	}

	switch dragons := yaku.HeadsIn(ms, Tile.IsDragon); {
	case dragons == 3:
		l.Set(BigThreeDragons)
	case dragons == 2 && s.Pair.Head.IsDragon():
		l.Set(LittleThreeDragons)
	}
}

func straightAndOutside(l *yaku.List, s tileSet) {
	ms := s.Melds()
	if yaku.AnyTriple(ms, pureStraight) {
		l.Set(PureStraight)
		return
	}
	if yaku.AllSimple(s) {
		l.Set(AllSimples)
		return
	}

	level := yaku.OutsideLevel(s)
	if l.Has(AllPungs) {
		switch level {
		case yaku.OutsidePure:
			l.Set(AllTerminals)
		case yaku.OutsideMixed:
			l.Set(AllTerminalsAndHonors)
		}
		return
	}
	switch level {
	case yaku.OutsidePure:
		l.Set(TerminalsInAllSets)
	case yaku.OutsideMixed:
		l.Set(OutsideHands)
	}
}

// pureStraight reports chows 1-2-3, 4-5-6 and 7-8-9 of one suit.
func pureStraight(a, b, c tileMeld) bool {
	if !a.Kind.IsChow() || !b.Kind.IsChow() || !c.Kind.IsChow() {
		return false
	}
	if a.Head.Color() != b.Head.Color() || b.Head.Color() != c.Head.Color() {
		return false
	}
	var ranks [Ranks + 1]bool
	for _, m := range []tileMeld{a, b, c} {
		ranks[m.Head.Number()] = true
	}
	return ranks[1] && ranks[4] && ranks[7]
}

func suits(l *yaku.List, s tileSet) {
	if yaku.AllHonors(s) {
		l.Set(AllHonors)
		return
	}
	switch yaku.FlushLevel(s) {
	case yaku.FullFlush:
		l.Set(FullFlush)
		return
	case yaku.HalfFlush:
		l.Set(HalfFlush)
	}

	ms := s.Melds()
	if yaku.AnyTriple(ms, func(a, b, c tileMeld) bool { return yaku.MixedSuits(true, a, b, c) }) {
		l.Set(MixedTripleChow)
	}
	if yaku.AnyTriple(ms, func(a, b, c tileMeld) bool { return yaku.MixedSuits(false, a, b, c) }) {
		l.Set(TriplePung)
	}
}

func concealedPungs(l *yaku.List, ms meldList) {
	conc := yaku.ConcealedPung[Tile]
	switch {
	case l.Has(AllPungs) && yaku.All(ms, conc):
		l.Set(FourConcealedPungs)
	case yaku.AnyTriple(ms, func(a, b, c tileMeld) bool { return conc(a) && conc(b) && conc(c) }):
		l.Set(ThreeConcealedPungs)
	case yaku.AnyPair(ms, func(a, b tileMeld) bool { return conc(a) && conc(b) }):
		l.Set(TwoConcealedPungs)
	}
}

func sameChows(l *yaku.List, ms meldList) {
	same := yaku.SameChow[Tile]
	if l.Has(AllChows) {
		switch {
		case same(ms[0], ms[1]) && same(ms[1], ms[2]) && same(ms[2], ms[3]):
			l.Set(QuadrupleChow)
			return
		case same(ms[0], ms[1]) && same(ms[2], ms[3]),
			same(ms[0], ms[2]) && same(ms[1], ms[3]),
			same(ms[0], ms[3]) && same(ms[1], ms[2]):
			l.Set(TwicePureDoubleChow)
			return
		}
	}
	switch {
	case yaku.AnyTriple(ms, func(a, b, c tileMeld) bool { return same(a, b) && same(b, c) }):
		l.Set(PureTripleChow)
	case yaku.AnyPair(ms, same):
		l.Set(PureDoubleChow)
	}
}

func shiftedPungs(l *yaku.List, ms meldList) {
	if l.Has(AllPungs) && yaku.Shifted(ms...) {
		l.Set(FourPureShiftedPungs)
		return
	}
	if yaku.AnyTriple(ms, func(a, b, c tileMeld) bool { return yaku.Shifted(a, b, c) }) {
		l.Set(PureShiftedPungs)
	}
}

func origin(l *yaku.List, s tileSet) {
	revealed, concealed := yaku.Provenance(s)
	if revealed {
		l.Set(AllRevealed)
	}
	if concealed {
		l.Set(AllConcealed)
	}
	switch yaku.Kongs(s.Melds()) {
	case 1:
		l.Set(OneKong)
	case 2:
		l.Set(TwoKongs)
	case 3:
		l.Set(ThreeKongs)
	case 4:
		l.Set(FourKongs)
	}
}
