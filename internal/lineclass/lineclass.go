// Package lineclass classifies the lines of a source file as code, comment,
// documentation or whitespace.
package lineclass

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the category assigned to a single source line.
type Kind int

const (
	Code Kind = iota
	Comment
	Doc
	Whitespace
)

// Kinds lists every category in display order.
var Kinds = []Kind{Code, Doc, Comment, Whitespace}

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case Comment:
		return "comment"
	case Doc:
		return "documentation"
	case Whitespace:
		return "whitespace"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Language identifies how a file's lines are classified.
type Language int

const (
	Unknown Language = iota
	Go
	Java
)

func (l Language) String() string {
	switch l {
	case Go:
		return "go"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

// ParseLanguage maps a language name ("go", "java") to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go":
		return Go, nil
	case "java":
		return Java, nil
	default:
		return Unknown, fmt.Errorf("lineclass: unknown language %q", s)
	}
}

// LanguageFor returns the language implied by filename's extension.
func LanguageFor(filename string) (Language, bool) {
	switch filepath.Ext(filename) {
	case ".go":
		return Go, true
	case ".java":
		return Java, true
	default:
		return Unknown, false
	}
}

// Counts holds the number of lines per category.
type Counts struct {
	Code       int
	Comment    int
	Doc        int
	Whitespace int
}

// Total returns the number of lines counted.
func (c Counts) Total() int {
	return c.Code + c.Comment + c.Doc + c.Whitespace
}

// Get returns the count for k.
func (c Counts) Get(k Kind) int {
	switch k {
	case Code:
		return c.Code
	case Comment:
		return c.Comment
	case Doc:
		return c.Doc
	case Whitespace:
		return c.Whitespace
	}
	return 0
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Code:       c.Code + o.Code,
		Comment:    c.Comment + o.Comment,
		Doc:        c.Doc + o.Doc,
		Whitespace: c.Whitespace + o.Whitespace,
	}
}

func (c *Counts) inc(k Kind) {
	switch k {
	case Code:
		c.Code++
	case Comment:
		c.Comment++
	case Doc:
		c.Doc++
	case Whitespace:
		c.Whitespace++
	}
}

// Warning flags a suspicious construct on a line.
type Warning struct {
	Line    int
	Message string
}

// Result is the classification of one file.
type Result struct {
	// Kinds holds one entry per line; Kinds[0] is line 1.
	Kinds    []Kind
	Counts   Counts
	Warnings []Warning
}

// Classify dispatches to the classifier for lang.
func Classify(lang Language, filename string, src []byte) (Result, error) {
	switch lang {
	case Go:
		return ClassifyGo(filename, src)
	case Java:
		return ClassifyJava(src), nil
	default:
		return Result{}, fmt.Errorf("lineclass: %s: unsupported language %s", filename, lang)
	}
}

func newResult(kinds []Kind) Result {
	r := Result{Kinds: kinds}
	for _, k := range kinds {
		r.Counts.inc(k)
	}
	return r
}

// splitLines splits src into lines without their terminators.
// A trailing newline does not start an extra line.
func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(src), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
