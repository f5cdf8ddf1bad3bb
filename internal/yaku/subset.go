package yaku

// Index tables for every 2- and 3-element subset of up to four melds.
var (
	pairsOf = [][][2]int{
		2: {{0, 1}},
		3: {{0, 1}, {0, 2}, {1, 2}},
		4: {{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	}
	triplesOf = [][][3]int{
		3: {{0, 1, 2}},
		4: {{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
	}
)

// AnyPair reports whether some two distinct elements of xs satisfy f.
func AnyPair[E any](xs []E, f func(a, b E) bool) bool {
	if len(xs) >= len(pairsOf) {
		panic("yaku: too many elements for subset tables")
	}
	for _, p := range pairsOf[len(xs)] {
		if f(xs[p[0]], xs[p[1]]) {
			return true
		}
	}
	return false
}

// AnyTriple reports whether some three distinct elements of xs satisfy f.
func AnyTriple[E any](xs []E, f func(a, b, c E) bool) bool {
	if len(xs) >= len(triplesOf) {
		panic("yaku: too many elements for subset tables")
	}
	for _, t := range triplesOf[len(xs)] {
		if f(xs[t[0]], xs[t[1]], xs[t[2]]) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies f.
func All[E any](xs []E, f func(E) bool) bool {
	for _, x := range xs {
		if !f(x) {
			return false
		}
	}
	return true
}

// Count returns how many elements satisfy f.
func Count[E any](xs []E, f func(E) bool) int {
	n := 0
	for _, x := range xs {
		if f(x) {
			n++
		}
	}
	return n
}
