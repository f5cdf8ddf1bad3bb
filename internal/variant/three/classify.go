package three

import (
	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/yaku"
)

type (
	tileSet  = meld.Set[Tile]
	meldList = []meld.Meld[Tile]
	tileMeld = meld.Meld[Tile]
)

// Classify returns the categories s satisfies. Group order matters: the
// outside and concealed-pung groups read the shape group's result.
func Classify(s tileSet, provenance bool) yaku.List {
	var l yaku.List
	ms := s.Melds()

	shape(&l, ms)
	scoredPungs(&l, s)
	honorGroup(&l, s)
	simpleOrOutside(&l, s)
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
		case Moon:
			l.Set(MoonPung)
		case Sun:
			l.Set(SunPung)
		case s.Wind:
			l.Set(WindPung)
		}
	}
}

func honorGroup(l *yaku.List, s tileSet) {
	ms := s.Melds()
	switch winds := yaku.HeadsIn(ms, Tile.IsWind); {
	case winds == 3:
		l.Set(BigThreeWinds)
		return
	case winds == 2 && s.Pair.Head.IsWind():
		l.Set(LittleThreeWinds)
		return
	}
	if yaku.HeadsIn(ms, Tile.IsDragon) == 2 {
		l.Set(TwoDragons)
	}
}

func simpleOrOutside(l *yaku.List, s tileSet) {
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
	if yaku.MixedSuits(true, ms...) {
		l.Set(MixedTripleChow)
	}
	if yaku.MixedSuits(false, ms...) {
		l.Set(TriplePung)
	}
}

func concealedPungs(l *yaku.List, ms meldList) {
	conc := yaku.ConcealedPung[Tile]
	switch {
	case l.Has(AllPungs) && yaku.All(ms, conc):
		l.Set(ThreeConcealedPungs)
	case yaku.AnyPair(ms, func(a, b tileMeld) bool { return conc(a) && conc(b) }):
		l.Set(TwoConcealedPungs)
	}
}

func sameChows(l *yaku.List, ms meldList) {
	same := yaku.SameChow[Tile]
	switch {
	case l.Has(AllChows) && same(ms[0], ms[1]) && same(ms[1], ms[2]):
		l.Set(PureTripleChow)
	case yaku.AnyPair(ms, same):
		l.Set(PureDoubleChow)
	}
}

func shiftedPungs(l *yaku.List, ms meldList) {
	switch {
	case l.Has(AllPungs) && yaku.Shifted(ms...):
		l.Set(ThreePureShiftedPungs)
	case yaku.AnyPair(ms, func(a, b tileMeld) bool { return yaku.Shifted(a, b) }):
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
	}
}
