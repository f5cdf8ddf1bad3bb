// Package variant is the registry of supported rule families.
package variant

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/variant/four"
	"github.com/abhisek/yakustat/internal/variant/three"
	"github.com/abhisek/yakustat/internal/yaku"
)

// ErrUnknown reports a family name that is not registered.
var ErrUnknown = errors.New("unknown variant")

// Variant is a rule family with its tile type erased.
type Variant interface {
	Name() string
	RecordSize() int
	Catalogue() *yaku.Catalogue
	NewAnalyzer(opts yaku.Options) (stats.Analyzer, error)
	Explain(record []byte, opts yaku.Options) ([]yaku.Explanation, error)
	Generate(shapes []corpus.Shape) ([][]byte, error)
}

var registry = map[string]Variant{
	four.Rules.Name():  four.Rules,
	three.Rules.Name(): three.Rules,
}

// Lookup returns the family registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	return v, nil
}

// Names lists the registered families.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
