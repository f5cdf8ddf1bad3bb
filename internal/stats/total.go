package stats

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Total is an unsigned 128-bit sum. Weighted counts over a full four-meld
// corpus with reveal expansion do not fit in 64 bits.
type Total struct {
	hi, lo uint64
}

// TotalOf returns v as a Total.
func TotalOf(v uint64) Total {
	return Total{lo: v}
}

// Add returns t + v.
func (t Total) Add(v uint64) Total {
	lo, carry := bits.Add64(t.lo, v, 0)
	return Total{hi: t.hi + carry, lo: lo}
}

// Plus returns t + o.
func (t Total) Plus(o Total) Total {
	lo, carry := bits.Add64(t.lo, o.lo, 0)
	hi, _ := bits.Add64(t.hi, o.hi, carry)
	return Total{hi: hi, lo: lo}
}

// Mul returns t × k.
func (t Total) Mul(k uint64) Total {
	hi, lo := bits.Mul64(t.lo, k)
	return Total{hi: hi + t.hi*k, lo: lo}
}

func (t Total) IsZero() bool {
	return t.hi == 0 && t.lo == 0
}

// Uint64 returns the low 64 bits and whether they hold the whole value.
func (t Total) Uint64() (uint64, bool) {
	return t.lo, t.hi == 0
}

func (t Total) Float64() float64 {
	return float64(t.hi)*math.Exp2(64) + float64(t.lo)
}

// Ratio returns t / d, or 0 when d is zero.
func (t Total) Ratio(d Total) float64 {
	if d.IsZero() {
		return 0
	}
	return t.Float64() / d.Float64()
}

func (t Total) Big() *big.Int {
	b := new(big.Int).SetUint64(t.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(t.lo))
}

func (t Total) String() string {
	if t.hi == 0 {
		return fmt.Sprint(t.lo)
	}
	return t.Big().String()
}

// ParseTotal reads a base-10 Total.
func ParseTotal(s string) (Total, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return Total{}, fmt.Errorf("invalid total %q", s)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	return Total{hi: new(big.Int).Rsh(b, 64).Uint64(), lo: lo}, nil
}

// MarshalJSON writes the total as a bare JSON integer.
func (t Total) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Total) UnmarshalJSON(data []byte) error {
	v, err := ParseTotal(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
