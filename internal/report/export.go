package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/yakustat/internal/stats"
)

// Document is the JSON export of one run.
type Document struct {
	RunID        string      `json:"run_id,omitempty"`
	Variant      string      `json:"variant"`
	Corpus       string      `json:"corpus"`
	Reveal       bool        `json:"reveal"`
	StartedAt    time.Time   `json:"started_at"`
	DurationMs   int64       `json:"duration_ms"`
	Records      int         `json:"records"`
	Undecomposed int         `json:"undecomposed"`
	Patterns     uint64      `json:"patterns"`
	Combinations stats.Total `json:"combinations"`
	ScoreSum     stats.Total `json:"score_sum"`
	Average      float64     `json:"average"`
	Categories   []Line      `json:"categories"`
}

// NewDocument assembles a document from a summary and its lines.
func NewDocument(variant, corpus string, reveal bool, started time.Time, elapsed time.Duration, s stats.Summary, lines []Line) Document {
	return Document{
		Variant:      variant,
		Corpus:       corpus,
		Reveal:       reveal,
		StartedAt:    started.UTC(),
		DurationMs:   elapsed.Milliseconds(),
		Records:      s.Records,
		Undecomposed: s.Undecomposed,
		Patterns:     s.Patterns,
		Combinations: s.Combinations,
		ScoreSum:     s.ScoreSum,
		Average:      s.Average(),
		Categories:   lines,
	}
}

const schemaURL = "https://yakustat.local/schemas/report.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["variant", "records", "combinations", "categories"],
  "properties": {
    "run_id": {"type": "string"},
    "variant": {"type": "string", "enum": ["four", "three"]},
    "corpus": {"type": "string"},
    "reveal": {"type": "boolean"},
    "started_at": {"type": "string"},
    "duration_ms": {"type": "integer", "minimum": 0},
    "records": {"type": "integer", "minimum": 0},
    "undecomposed": {"type": "integer", "minimum": 0},
    "patterns": {"type": "integer", "minimum": 0},
    "combinations": {"type": "integer", "minimum": 0},
    "score_sum": {"type": "integer", "minimum": 0},
    "average": {"type": "number", "minimum": 0},
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["hand", "name", "weight", "patterns", "combinations", "score_sum", "average", "share"],
        "properties": {
          "hand": {"type": "integer", "minimum": 0, "maximum": 63},
          "name": {"type": "string", "minLength": 1},
          "local": {"type": "string"},
          "weight": {"type": "integer", "minimum": 0},
          "patterns": {"type": "integer", "minimum": 0},
          "combinations": {"type": "integer", "minimum": 0},
          "score_sum": {"type": "integer", "minimum": 0},
          "average": {"type": "number", "minimum": 0},
          "share": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(schemaJSON)))
		if err != nil {
			schemaErr = fmt.Errorf("parse report schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add report schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// WriteJSON validates d against the report schema and writes it indented.
func WriteJSON(w io.Writer, d Document) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := Validate(raw); err != nil {
		return err
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}

// Validate checks raw JSON against the report schema.
func Validate(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse report: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("report schema: %w", err)
	}
	return nil
}
