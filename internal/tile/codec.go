package tile

import "fmt"

// DecodeError reports a corpus byte that does not name a tile.
type DecodeError struct {
	Offset int
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid tile code %q at offset %d", e.Byte, e.Offset)
}

// Codec maps tiles to their single-byte corpus codes and back. The mapping is
// an explicit table so the file format does not depend on enum layout.
type Codec[T Kind[T]] struct {
	encode []byte
	decode [256]int16
	kinds  []T
}

// NewCodec builds a codec from one code per tile, listed in the same order
// as kinds.
func NewCodec[T Kind[T]](kinds []T, codes []byte) *Codec[T] {
	if len(kinds) != len(codes) {
		panic(fmt.Sprintf("tile: %d kinds but %d codes", len(kinds), len(codes)))
	}
	c := &Codec[T]{
		encode: make([]byte, len(kinds)),
		kinds:  kinds,
	}
	for i := range c.decode {
		c.decode[i] = -1
	}
	for i, k := range kinds {
		if c.decode[codes[i]] != -1 {
			panic(fmt.Sprintf("tile: duplicate code %q", codes[i]))
		}
		c.encode[k] = codes[i]
		c.decode[codes[i]] = int16(i)
	}
	return c
}

// Encode returns the corpus byte for t.
func (c *Codec[T]) Encode(t T) byte {
	return c.encode[t]
}

// Decode returns the tile for b. The offset is only used for error reporting.
func (c *Codec[T]) Decode(b byte, offset int) (T, error) {
	i := c.decode[b]
	if i < 0 {
		var zero T
		return zero, &DecodeError{Offset: offset, Byte: b}
	}
	return c.kinds[i], nil
}

// DecodeAll decodes a record into dst, which must have len(record) capacity.
func (c *Codec[T]) DecodeAll(dst []T, record []byte) ([]T, error) {
	dst = dst[:0]
	for i, b := range record {
		t, err := c.Decode(b, i)
		if err != nil {
			return nil, err
		}
		dst = append(dst, t)
	}
	return dst, nil
}

// EncodeAll appends the codes of tiles to dst.
func (c *Codec[T]) EncodeAll(dst []byte, tiles []T) []byte {
	for _, t := range tiles {
		dst = append(dst, c.Encode(t))
	}
	return dst
}

// Kinds returns every tile of the family in code order.
func (c *Codec[T]) Kinds() []T {
	return c.kinds
}

// Sequential returns codes 'A', 'B', ... for n kinds.
func Sequential(n int) []byte {
	codes := make([]byte, n)
	for i := range codes {
		codes[i] = 'A' + byte(i)
	}
	return codes
}
