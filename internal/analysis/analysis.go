// Package analysis classifies the source lines under a target path and builds a report.
package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/yag13s/srcstat/internal/astmap"
	"github.com/yag13s/srcstat/internal/lineclass"
	"github.com/yag13s/srcstat/internal/report"
	"github.com/yag13s/srcstat/internal/scan"
)

// Options controls analysis behavior.
type Options struct {
	// Languages restricts analysis to these languages. Empty means all.
	Languages []lineclass.Language

	// SkipDirs lists directory names not descended into.
	SkipDirs []string

	// OnlyUndocumented keeps only exported declarations without a doc
	// comment in the per-file declaration lists. Line counts are unaffected.
	OnlyUndocumented bool

	// Debug receives a trace of every file examined. Nil disables tracing.
	Debug *log.Logger
}

func (o Options) debugf(format string, args ...any) {
	if o.Debug != nil {
		o.Debug.Printf(format, args...)
	}
}

// Run analyzes target, which may be a single source file or a directory
// searched recursively.
func Run(target string, opts Options) (*report.Report, error) {
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("analysis: target does not exist: %q", target)
		}
		return nil, fmt.Errorf("analysis: %w", err)
	}

	var files []string
	if info.IsDir() {
		files, err = scan.FindSources(target, scan.Options{
			Languages: opts.Languages,
			SkipDirs:  opts.SkipDirs,
			OnSkip: func(path string, reason error) {
				opts.debugf("skip %s: %v", path, reason)
			},
		})
		if err != nil {
			return nil, err
		}
	} else {
		lang, err := scan.CheckFile(target)
		if err != nil {
			return nil, err
		}
		if !selected(lang, opts.Languages) {
			return nil, fmt.Errorf("analysis: %s: language %s not selected", target, lang)
		}
		files = []string{target}
	}

	rpt := &report.Report{
		Version: report.SchemaVersion,
		Mode:    "analyze",
		Target:  target,
		Files:   []report.FileReport{},
	}

	for _, path := range files {
		fr, warnings, err := analyzeFile(path, opts)
		rpt.Warnings = append(rpt.Warnings, warnings...)
		if err != nil {
			opts.debugf("%v", err)
			rpt.Warnings = append(rpt.Warnings, report.Warning{FileName: path, Message: err.Error()})
			continue
		}
		rpt.Files = append(rpt.Files, *fr)
	}

	rpt.Recompute()
	return rpt, nil
}

func analyzeFile(path string, opts Options) (*report.FileReport, []report.Warning, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: %w", err)
	}

	lang, _ := lineclass.LanguageFor(path)
	res, err := lineclass.Classify(lang, path, src)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: %w", err)
	}
	opts.debugf("%s: %s, %d lines (code=%d comment=%d doc=%d whitespace=%d)",
		path, lang, res.Counts.Total(), res.Counts.Code, res.Counts.Comment, res.Counts.Doc, res.Counts.Whitespace)

	var warnings []report.Warning
	for _, w := range res.Warnings {
		warnings = append(warnings, report.Warning{FileName: path, Line: w.Line, Message: w.Message})
	}

	fr := &report.FileReport{
		FileName: path,
		Language: lang.String(),
		Total:    report.NewLineStats(res.Counts),
	}

	if lang == lineclass.Go {
		decls, err := astmap.SourceDecls(path, src)
		if err != nil {
			return nil, warnings, fmt.Errorf("analysis: %w", err)
		}
		for _, d := range decls {
			if opts.OnlyUndocumented && (!d.Exported || d.DocLines > 0) {
				continue
			}
			fr.Decls = append(fr.Decls, report.DeclReport{
				Name:     d.Name,
				Kind:     d.Kind,
				Line:     d.Line,
				Exported: d.Exported,
				DocLines: d.DocLines,
			})
		}
	}

	return fr, warnings, nil
}

func selected(lang lineclass.Language, langs []lineclass.Language) bool {
	if len(langs) == 0 {
		return true
	}
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}
