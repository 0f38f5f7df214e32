package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/yag13s/srcstat/internal/analysis"
	"github.com/yag13s/srcstat/internal/merge"
	"github.com/yag13s/srcstat/internal/report"
)

func runAnalyze(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	langs := fs.String("lang", "", "languages to analyze (comma-separated: go,java)")
	skip := fs.String("skip", "", "directory names to skip (comma-separated)")
	undocumented := fs.Bool("undocumented", false, "list only exported declarations without doc comments")
	outputFile := fs.String("o", "", "output file (default: stdout)")
	pretty := fs.Bool("pretty", false, "pretty-print JSON output")
	_ = fs.Parse(args) // ExitOnError: never returns error

	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one target file or directory is required")
	}

	opts, err := analysisOptions(*langs, *skip)
	if err != nil {
		return err
	}
	opts.OnlyUndocumented = *undocumented

	rpt, err := analysis.Run(fs.Arg(0), opts)
	if err != nil {
		return err
	}
	rpt.GeneratedAt = time.Now().UTC()
	printWarnings(stderr, rpt)

	return writeReport(rpt, *outputFile, *pretty, stdout)
}

func runMerge(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	outputFile := fs.String("o", "", "output file (default: stdout)")
	pretty := fs.Bool("pretty", false, "pretty-print JSON output")
	_ = fs.Parse(args) // ExitOnError: never returns error

	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("at least one report.json path is required")
	}

	reports := make([]*report.Report, 0, len(paths))
	for _, p := range paths {
		r, err := report.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		reports = append(reports, r)
	}

	merged, err := merge.Merge(reports)
	if err != nil {
		return err
	}
	return writeReport(merged, *outputFile, *pretty, stdout)
}

func writeReport(rpt *report.Report, path string, pretty bool, stdout io.Writer) (err error) {
	w, closeFn, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()
	return rpt.Write(w, pretty)
}
