package three

import "github.com/abhisek/yakustat/internal/yaku"

// Hand categories of the three-meld family, in scoring-table order.
const (
	AllChows yaku.Hand = iota
	AllRevealed
	AllConcealed
	MoonPung
	SunPung
	WindPung
	AllPungs
	TwoDragons
	LittleThreeWinds
	BigThreeWinds
	AllSimples
	OutsideHands
	TerminalsInAllSets
	AllTerminalsAndHonors
	HalfFlush
	FullFlush
	AllHonors
	TwoConcealedPungs
	ThreeConcealedPungs
	PureDoubleChow
	PureTripleChow
	MixedTripleChow
	TriplePung
	PureShiftedPungs
	ThreePureShiftedPungs
	OneKong
	TwoKongs
	ThreeKongs
	AllTerminals
	NoPoint
)

const MaxScore = 16

// Catalogue is the scoring table. Sun and Moon pungs are reported together
// with the seat wind pung.
var Catalogue = yaku.NewCatalogue("three", MaxScore, NoPoint, []yaku.Entry{
	{Hand: AllChows, Name: "All Chows", Local: "平和", Weight: 0},
	{Hand: AllRevealed, Name: "All Revealed", Local: "全求人", Weight: 2},
	{Hand: AllConcealed, Name: "All Concealed", Local: "不求人", Weight: 2},
	{Hand: MoonPung, Name: "Moon Pung", Local: "役牌", Weight: 2, Merge: true, Bucket: WindPung},
	{Hand: SunPung, Name: "Sun Pung", Local: "役牌", Weight: 2, Merge: true, Bucket: WindPung},
	{Hand: WindPung, Name: "Scored Pung", Local: "役牌", Weight: 2},
	{Hand: AllPungs, Name: "All Pungs", Local: "對對和", Weight: 3},
	{Hand: TwoDragons, Name: "Two Dragons", Local: "雙喜", Weight: 2},
	{Hand: LittleThreeWinds, Name: "Little Three Winds", Local: "小三元", Weight: 4},
	{Hand: BigThreeWinds, Name: "Big Three Winds", Local: "大三元", Weight: 16},
	{Hand: AllSimples, Name: "All Simples", Local: "斷幺", Weight: 2},
	{Hand: OutsideHands, Name: "Outside Hand", Local: "混全帶", Weight: 1},
	{Hand: TerminalsInAllSets, Name: "Terminals In All Sets", Local: "清全帶", Weight: 2},
	{Hand: AllTerminalsAndHonors, Name: "All Terminals And Honors", Local: "混老頭", Weight: 4},
	{Hand: HalfFlush, Name: "Half Flush", Local: "混一色", Weight: 3},
	{Hand: FullFlush, Name: "Full Flush", Local: "清一色", Weight: 6},
	{Hand: AllHonors, Name: "All Honors", Local: "字一色", Weight: 16},
	{Hand: TwoConcealedPungs, Name: "Two Concealed Pungs", Local: "二暗刻", Weight: 1},
	{Hand: ThreeConcealedPungs, Name: "Three Concealed Pungs", Local: "三暗刻", Weight: 3},
	{Hand: PureDoubleChow, Name: "Pure Double Chow", Local: "一般高", Weight: 2},
	{Hand: PureTripleChow, Name: "Pure Triple Chow", Local: "三同順", Weight: 12},
	{Hand: MixedTripleChow, Name: "Mixed Triple Chow", Local: "三色順", Weight: 3},
	{Hand: TriplePung, Name: "Triple Pung", Local: "三色刻", Weight: 12},
	{Hand: PureShiftedPungs, Name: "Pure Shifted Pungs", Local: "二連刻", Weight: 3},
	{Hand: ThreePureShiftedPungs, Name: "Three Pure Shifted Pungs", Local: "三連刻", Weight: 6},
	{Hand: OneKong, Name: "One Kong", Local: "一槓子", Weight: 2},
	{Hand: TwoKongs, Name: "Two Kongs", Local: "二槓子", Weight: 6},
	{Hand: ThreeKongs, Name: "Three Kongs", Local: "三槓子", Weight: 16},
	{Hand: AllTerminals, Name: "All Terminals", Local: "清老頭", Weight: 12},
	{Hand: NoPoint, Name: "No Point", Local: "無役", Weight: 0},
})
