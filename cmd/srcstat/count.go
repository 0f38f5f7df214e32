package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yag13s/srcstat/internal/analysis"
	"github.com/yag13s/srcstat/internal/lineclass"
	"github.com/yag13s/srcstat/internal/report"
)

func runCount(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	individual := fs.Bool("i", false, "print the breakdown of every file as well as the grand total")
	verbose := fs.Bool("v", false, "list the files that were analyzed")
	debugOut := fs.Bool("d", false, "trace file parsing on stderr")
	langs := fs.String("lang", "", "languages to analyze (comma-separated: go,java)")
	skip := fs.String("skip", "", "directory names to skip (comma-separated)")
	_ = fs.Parse(args) // ExitOnError: never returns error

	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one target file or directory is required")
	}

	opts, err := analysisOptions(*langs, *skip)
	if err != nil {
		return err
	}
	if *debugOut {
		opts.Debug = log.New(stderr, "debug: ", 0)
	}

	rpt, err := analysis.Run(fs.Arg(0), opts)
	if err != nil {
		return err
	}
	printWarnings(stderr, rpt)

	fmt.Fprintf(stdout, "srcstat %s\n", version)
	return rpt.WriteText(stdout, report.TextOptions{Individual: *individual, Verbose: *verbose})
}

func runSummary(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	individual := fs.Bool("i", false, "print the breakdown of every file as well as the grand total")
	verbose := fs.Bool("v", false, "list the files in the report")
	_ = fs.Parse(args) // ExitOnError: never returns error

	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one report.json path is required")
	}

	rpt, err := report.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	return rpt.WriteText(stdout, report.TextOptions{Individual: *individual, Verbose: *verbose})
}

// analysisOptions builds analysis options from the comma-separated -lang
// and -skip flag values.
func analysisOptions(langs, skip string) (analysis.Options, error) {
	var opts analysis.Options
	for _, s := range splitList(langs) {
		l, err := lineclass.ParseLanguage(s)
		if err != nil {
			return opts, err
		}
		opts.Languages = append(opts.Languages, l)
	}
	opts.SkipDirs = splitList(skip)
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printWarnings(w io.Writer, rpt *report.Report) {
	for _, warn := range rpt.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
}

// openOutput returns stdout, or the created file when path is set.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}
