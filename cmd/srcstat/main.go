// Command srcstat counts code, comment, documentation and whitespace lines in
// Go and Java source trees.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

var version = "dev"

func init() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "version":
		fmt.Printf("srcstat %s\n", version)
		return
	case "count":
		err = runCount(os.Args[2:], os.Stdout, os.Stderr)
	case "analyze":
		err = runAnalyze(os.Args[2:], os.Stdout, os.Stderr)
	case "summary":
		err = runSummary(os.Args[2:], os.Stdout)
	case "merge":
		err = runMerge(os.Args[2:], os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "srcstat: unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "srcstat %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: srcstat <command> [flags]

Commands:
  count     Print the line breakdown of a file or directory
  analyze   Analyze a file or directory and output JSON report
  summary   Print the line breakdown stored in a report.json
  merge     Merge multiple report.json files (newest analysis per file)
  version   Print version information`)
}
