// Package report defines the JSON report schema and text rendering for srcstat.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yag13s/srcstat/internal/lineclass"
)

// SchemaVersion is the report version written and accepted by this package.
const SchemaVersion = 1

// Report is the top-level JSON output of srcstat analyze.
type Report struct {
	Version     int          `json:"version"`
	GeneratedAt time.Time    `json:"generated_at"`
	Mode        string       `json:"mode"`
	Target      string       `json:"target"`
	Total       LineStats    `json:"total"`
	Files       []FileReport `json:"files"`
	Warnings    []Warning    `json:"warnings,omitempty"`
}

// LineStats holds line counts per category.
type LineStats struct {
	Code       int `json:"code"`
	Comment    int `json:"comment"`
	Doc        int `json:"doc"`
	Whitespace int `json:"whitespace"`
	Total      int `json:"total"`
}

// FileReport holds line counts for a single source file.
type FileReport struct {
	FileName string       `json:"file_name"`
	Language string       `json:"language"`
	Total    LineStats    `json:"total"`
	Decls    []DeclReport `json:"decls,omitempty"`
}

// DeclReport describes a top-level declaration in a Go file.
type DeclReport struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Line     int    `json:"line"`
	Exported bool   `json:"exported"`
	DocLines int    `json:"doc_lines"`
}

// Warning flags a suspicious line or a file that could not be analyzed.
type Warning struct {
	FileName string `json:"file_name"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.FileName, w.Line, w.Message)
}

// NewLineStats converts classifier counts to report stats.
func NewLineStats(c lineclass.Counts) LineStats {
	return LineStats{
		Code:       c.Code,
		Comment:    c.Comment,
		Doc:        c.Doc,
		Whitespace: c.Whitespace,
		Total:      c.Total(),
	}
}

// Counts converts s back to classifier counts.
func (s LineStats) Counts() lineclass.Counts {
	return lineclass.Counts{
		Code:       s.Code,
		Comment:    s.Comment,
		Doc:        s.Doc,
		Whitespace: s.Whitespace,
	}
}

// Recompute sets the report total from its files.
func (r *Report) Recompute() {
	var total lineclass.Counts
	for _, f := range r.Files {
		total = total.Add(f.Total.Counts())
	}
	r.Total = NewLineStats(total)
}

// Write serializes the report as JSON to the given writer.
func (r *Report) Write(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// Read decodes a report from r.
func Read(r io.Reader) (*Report, error) {
	var rpt Report
	if err := json.NewDecoder(r).Decode(&rpt); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	if rpt.Version != SchemaVersion {
		return nil, fmt.Errorf("report: unsupported version %d", rpt.Version)
	}
	return &rpt, nil
}

// ReadFile decodes the report stored at path.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ComputePercent returns part as a percentage of total, or 0 for zero total.
func ComputePercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
