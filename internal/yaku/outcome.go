package yaku

// Options tune how a record is analysed.
type Options struct {
	// Reveal expands each decomposition into its revealed, concealed and
	// kong alternatives and enables the provenance categories.
	Reveal bool
	// SeatWind is the corpus code of the seat wind tile. Zero selects the
	// family default.
	SeatWind byte
}

// Outcome is one classified decomposition with the number of concrete
// deals it stands for.
type Outcome struct {
	List   List
	Weight uint64
}

// Explanation is an Outcome with a readable rendering of its decomposition.
type Explanation struct {
	Outcome
	Set   string
	Score int
}
