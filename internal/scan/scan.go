// Package scan locates source files that the line classifier accepts.
package scan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yag13s/srcstat/internal/lineclass"
)

// sniffLen is the number of leading bytes inspected by CheckFile.
const sniffLen = 512

// Options controls which files FindSources returns.
type Options struct {
	// Languages restricts results to these languages. Empty means all
	// supported languages.
	Languages []lineclass.Language

	// SkipDirs lists directory names that are not descended into.
	// Hidden directories are always skipped.
	SkipDirs []string

	// OnSkip, if set, is called for every regular file that was rejected.
	OnSkip func(path string, reason error)
}

// ErrUnsupported is returned by CheckFile for files of an unknown language.
var ErrUnsupported = errors.New("unsupported file extension")

// CheckFile verifies that path has a supported extension and holds text.
func CheckFile(path string) (lineclass.Language, error) {
	lang, ok := lineclass.LanguageFor(path)
	if !ok {
		return lineclass.Unknown, fmt.Errorf("scan: %s: %w (%q)", path, ErrUnsupported, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return lineclass.Unknown, fmt.Errorf("scan: %w", err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return lineclass.Unknown, fmt.Errorf("scan: read %s: %w", path, err)
	}

	if n > 0 {
		ctype := http.DetectContentType(buf[:n])
		if !strings.HasPrefix(ctype, "text/plain") {
			return lineclass.Unknown, fmt.Errorf("scan: %s: content type is %s, want text/plain", path, ctype)
		}
	}
	return lang, nil
}

// FindSources walks root and returns the sorted paths of accepted source files.
func FindSources(root string, opts Options) ([]string, error) {
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		skip[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || skip[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		lang, err := CheckFile(path)
		if err != nil {
			if opts.OnSkip != nil {
				opts.OnSkip(path, err)
			}
			return nil
		}
		if !wanted(lang, opts.Languages) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan: walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func wanted(lang lineclass.Language, langs []lineclass.Language) bool {
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
