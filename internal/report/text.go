package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/yag13s/srcstat/internal/lineclass"
)

// TextOptions controls WriteText.
type TextOptions struct {
	// Individual prints one block per file instead of a single grand total.
	Individual bool
	// Verbose lists the analyzed files under the heading.
	Verbose bool
}

var labels = map[lineclass.Kind]string{
	lineclass.Code:       "lines of code",
	lineclass.Doc:        "documentation lines",
	lineclass.Comment:    "comments",
	lineclass.Whitespace: "whitespace lines",
}

// WriteText renders the report as a human-readable breakdown.
func (r *Report) WriteText(w io.Writer, opts TextOptions) error {
	tw := &errWriter{w: w}

	if len(r.Files) == 1 && r.Files[0].FileName == r.Target {
		tw.printf("\n%s\n\n", r.Target)
	} else {
		tw.printf("\n%s (%d files)\n\n", r.Target, len(r.Files))
		if opts.Verbose {
			for _, f := range r.Files {
				tw.printf("%s\n", r.relName(f.FileName))
			}
			tw.printf("\n")
		}
	}

	if opts.Individual && len(r.Files) > 1 {
		for i, f := range r.Files {
			if i > 0 {
				tw.printf("\n")
			}
			tw.printf("%s\n", f.FileName)
			writeBreakdown(tw, f.Total.Counts())
		}
		tw.printf("\n")
	}

	writeBreakdown(tw, r.Total.Counts())
	return tw.err
}

// relName returns name relative to the report target, or name itself when
// it does not lie under the target.
func (r *Report) relName(name string) string {
	rel, err := filepath.Rel(r.Target, name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return name
	}
	return rel
}

func writeBreakdown(tw *errWriter, c lineclass.Counts) {
	kinds := make([]lineclass.Kind, len(lineclass.Kinds))
	copy(kinds, lineclass.Kinds)
	sort.SliceStable(kinds, func(i, j int) bool {
		return c.Get(kinds[i]) > c.Get(kinds[j])
	})

	total := c.Total()
	width := len(strconv.Itoa(c.Get(kinds[0])))
	for _, k := range kinds {
		n := c.Get(k)
		tw.printf("%*d %s (%.2f%%)\n", width, n, labels[k], ComputePercent(n, total))
	}

	totalLine := fmt.Sprintf("%d total lines", total)
	tw.printf("%s\n%s\n", strings.Repeat("-", len(totalLine)), totalLine)
}

// errWriter remembers the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
