package four

import "github.com/abhisek/yakustat/internal/yaku"

// Hand categories of the four-meld family, in scoring-table order.
const (
	AllChows yaku.Hand = iota
	AllRevealed
	AllConcealed
	RedPung
	GreenPung
	WhitePung
	WindPung
	PureStraight
	AllPungs
	LittleThreeDragons
	BigThreeDragons
	LittleFourWinds
	AllSimples
	OutsideHands
	TerminalsInAllSets
	AllTerminalsAndHonors
	HalfFlush
	FullFlush
	AllHonors
	TwoConcealedPungs
	ThreeConcealedPungs
	FourConcealedPungs
	OneKong
	TwoKongs
	ThreeKongs
	PureDoubleChow
	TwicePureDoubleChow
	PureTripleChow
	MixedTripleChow
	TriplePung
	PureShiftedPungs
	FourPureShiftedPungs
	BigFourWinds
	AllTerminals
	QuadrupleChow
	FourKongs
	NoPoint
)

// MaxScore caps the score of a single decomposition.
const MaxScore = 32

// Catalogue is the scoring table. Dragon pungs are reported together with
// the wind pung.
var Catalogue = yaku.NewCatalogue("four", MaxScore, NoPoint, []yaku.Entry{
	{Hand: AllChows, Name: "All Chows", Local: "平和", Weight: 1},
	{Hand: AllRevealed, Name: "All Revealed", Local: "全求人", Weight: 2},
	{Hand: AllConcealed, Name: "All Concealed", Local: "不求人", Weight: 2},
	{Hand: RedPung, Name: "Red Pung", Local: "役牌", Weight: 2, Merge: true, Bucket: WindPung},
	{Hand: GreenPung, Name: "Green Pung", Local: "役牌", Weight: 2, Merge: true, Bucket: WindPung},
	{Hand: WhitePung, Name: "White Pung", Local: "役牌", Weight: 2, Merge: true, Bucket: WindPung},
	{Hand: WindPung, Name: "Scored Pung", Local: "役牌", Weight: 2},
	{Hand: PureStraight, Name: "Pure Straight", Local: "一氣", Weight: 4},
	{Hand: AllPungs, Name: "All Pungs", Local: "對對和", Weight: 4},
	{Hand: LittleThreeDragons, Name: "Little Three Dragons", Local: "小三元", Weight: 6},
	{Hand: BigThreeDragons, Name: "Big Three Dragons", Local: "大三元", Weight: 8},
	{Hand: LittleFourWinds, Name: "Little Four Winds", Local: "小四喜", Weight: 16},
	{Hand: AllSimples, Name: "All Simples", Local: "斷幺九", Weight: 1},
	{Hand: OutsideHands, Name: "Outside Hand", Local: "混全帶", Weight: 4},
	{Hand: TerminalsInAllSets, Name: "Terminals In All Sets", Local: "清全帶", Weight: 6},
	{Hand: AllTerminalsAndHonors, Name: "All Terminals And Honors", Local: "混老頭", Weight: 12},
	{Hand: HalfFlush, Name: "Half Flush", Local: "混一色", Weight: 4},
	{Hand: FullFlush, Name: "Full Flush", Local: "清一色", Weight: 8},
	{Hand: AllHonors, Name: "All Honors", Local: "字一色", Weight: 32},
	{Hand: TwoConcealedPungs, Name: "Two Concealed Pungs", Local: "二暗刻", Weight: 1},
	{Hand: ThreeConcealedPungs, Name: "Three Concealed Pungs", Local: "三暗刻", Weight: 3},
	{Hand: FourConcealedPungs, Name: "Four Concealed Pungs", Local: "四暗刻", Weight: 4},
	{Hand: OneKong, Name: "One Kong", Local: "一槓子", Weight: 1},
	{Hand: TwoKongs, Name: "Two Kongs", Local: "二槓子", Weight: 4},
	{Hand: ThreeKongs, Name: "Three Kongs", Local: "三槓子", Weight: 12},
	{Hand: PureDoubleChow, Name: "Pure Double Chow", Local: "一般高", Weight: 1},
	{Hand: TwicePureDoubleChow, Name: "Twice Pure Double Chow", Local: "二般高", Weight: 8},
	{Hand: PureTripleChow, Name: "Pure Triple Chow", Local: "三同順", Weight: 12},
	{Hand: MixedTripleChow, Name: "Mixed Triple Chow", Local: "三色順", Weight: 3},
	{Hand: TriplePung, Name: "Triple Pung", Local: "三色刻", Weight: 12},
	{Hand: PureShiftedPungs, Name: "Pure Shifted Pungs", Local: "三連刻", Weight: 4},
	{Hand: FourPureShiftedPungs, Name: "Four Pure Shifted Pungs", Local: "四連刻", Weight: 16},
	{Hand: BigFourWinds, Name: "Big Four Winds", Local: "大四喜", Weight: 32},
	{Hand: AllTerminals, Name: "All Terminals", Local: "清老頭", Weight: 32},
	{Hand: QuadrupleChow, Name: "Quadruple Chow", Local: "四同順", Weight: 32},
	{Hand: FourKongs, Name: "Four Kongs", Local: "四槓子", Weight: 32},
	{Hand: NoPoint, Name: "No Point", Local: "無役", Weight: 0},
})
