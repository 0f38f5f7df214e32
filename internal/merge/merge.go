// Package merge combines multiple srcstat report.json files into a single
// report, keeping the newest analysis of every file.
package merge

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yag13s/srcstat/internal/report"
)

// Merge combines reports into one. A file seen in several reports is taken,
// together with its warnings, from the report with the latest GeneratedAt;
// on equal timestamps the later report in the slice wins. Inputs are not
// modified.
func Merge(reports []*report.Report) (*report.Report, error) {
	if len(reports) == 0 {
		return nil, fmt.Errorf("merge requires at least 1 report, got 0")
	}

	// owner maps a file name to the index of the report it is taken from.
	owner := make(map[string]int)
	claim := func(name string, idx int) {
		cur, ok := owner[name]
		if !ok || !reports[idx].GeneratedAt.Before(reports[cur].GeneratedAt) {
			owner[name] = idx
		}
	}
	for i, r := range reports {
		for _, f := range r.Files {
			claim(f.FileName, i)
		}
		for _, w := range r.Warnings {
			claim(w.FileName, i)
		}
	}

	merged := &report.Report{
		Version:     report.SchemaVersion,
		GeneratedAt: time.Now().UTC(),
		Mode:        "merged",
		Target:      joinTargets(reports),
		Files:       []report.FileReport{},
	}

	seenWarning := make(map[report.Warning]bool)
	for i, r := range reports {
		for _, f := range r.Files {
			if owner[f.FileName] == i {
				merged.Files = append(merged.Files, copyFile(f))
			}
		}
		for _, w := range r.Warnings {
			if owner[w.FileName] == i && !seenWarning[w] {
				seenWarning[w] = true
				merged.Warnings = append(merged.Warnings, w)
			}
		}
	}

	// A file owned by a report that lists it twice must appear once.
	merged.Files = dedupeFiles(merged.Files)

	sort.Slice(merged.Files, func(i, j int) bool {
		return merged.Files[i].FileName < merged.Files[j].FileName
	})
	sort.SliceStable(merged.Warnings, func(i, j int) bool {
		a, b := merged.Warnings[i], merged.Warnings[j]
		if a.FileName != b.FileName {
			return a.FileName < b.FileName
		}
		return a.Line < b.Line
	})

	merged.Recompute()
	return merged, nil
}

func joinTargets(reports []*report.Report) string {
	seen := make(map[string]bool)
	var targets []string
	for _, r := range reports {
		if r.Target == "" || seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		targets = append(targets, r.Target)
	}
	return strings.Join(targets, ",")
}

func dedupeFiles(files []report.FileReport) []report.FileReport {
	seen := make(map[string]bool, len(files))
	out := files[:0]
	for _, f := range files {
		if seen[f.FileName] {
			continue
		}
		seen[f.FileName] = true
		out = append(out, f)
	}
	return out
}

// copyFile returns a deep copy of f so the merged report shares no slices
// with its inputs.
func copyFile(f report.FileReport) report.FileReport {
	df := f
	if len(f.Decls) > 0 {
		df.Decls = make([]report.DeclReport, len(f.Decls))
		copy(df.Decls, f.Decls)
	}
	return df
}
