// Package corpus reads and writes hand corpora: flat files of fixed-size
// records, one byte per tile, and computes how many real deals each record
// stands for.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ShapeError reports a corpus whose length is not a whole number of records.
type ShapeError struct {
	Size       int
	RecordSize int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("corpus of %d bytes is not a multiple of the %d-byte record size", e.Size, e.RecordSize)
}

// Corpus is an in-memory set of records.
type Corpus struct {
	data       []byte
	recordSize int
}

// New wraps data, which must hold whole records.
func New(data []byte, recordSize int) (*Corpus, error) {
	if recordSize <= 0 {
		return nil, fmt.Errorf("corpus: invalid record size %d", recordSize)
	}
	if len(data)%recordSize != 0 {
		return nil, &ShapeError{Size: len(data), RecordSize: recordSize}
	}
	return &Corpus{data: data, recordSize: recordSize}, nil
}

// Read loads a whole corpus from r.
func Read(r io.Reader, recordSize int) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return New(data, recordSize)
}

// Open loads the corpus file at path.
func Open(path string, recordSize int) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Read(f, recordSize)
}

// Len returns the number of records.
func (c *Corpus) Len() int { return len(c.data) / c.recordSize }

// RecordSize returns the size of one record in bytes.
func (c *Corpus) RecordSize() int { return c.recordSize }

// Record returns the i-th record. The slice aliases the corpus.
func (c *Corpus) Record(i int) []byte {
	off := i * c.recordSize
	return c.data[off : off+c.recordSize : off+c.recordSize]
}

// Write writes records back to back.
func Write(w io.Writer, records [][]byte) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if _, err := bw.Write(r); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush corpus: %w", err)
	}
	return nil
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
