package lineclass

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

// ClassifyGo classifies a Go source file. Comment groups attached as Doc to
// the file, a declaration, a spec or a field count as documentation; every
// other comment counts as a comment. A line whose comment follows code stays
// code.
func ClassifyGo(filename string, src []byte) (Result, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return Result{}, fmt.Errorf("lineclass: parse %s: %w", filename, err)
	}

	lines := splitLines(src)
	kinds := make([]Kind, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			kinds[i] = Whitespace
		}
	}

	docs := docGroups(f)
	for _, cg := range f.Comments {
		kind := Comment
		if docs[cg] {
			kind = Doc
		}
		for _, c := range cg.List {
			start := fset.PositionFor(c.Pos(), false)
			end := fset.PositionFor(c.End(), false)
			for ln := start.Line; ln <= end.Line && ln <= len(lines); ln++ {
				if kinds[ln-1] == Whitespace {
					continue
				}
				if ln == start.Line && !startsLine(lines[ln-1], start.Column) {
					continue
				}
				kinds[ln-1] = kind
			}
		}
	}

	return newResult(kinds), nil
}

// docGroups collects the comment groups that serve as documentation.
func docGroups(f *ast.File) map[*ast.CommentGroup]bool {
	docs := make(map[*ast.CommentGroup]bool)
	if f.Doc != nil {
		docs[f.Doc] = true
	}

	insp := inspector.New([]*ast.File{f})
	filter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
		(*ast.TypeSpec)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.ImportSpec)(nil),
		(*ast.Field)(nil),
	}
	insp.Preorder(filter, func(n ast.Node) {
		var doc *ast.CommentGroup
		switch n := n.(type) {
		case *ast.FuncDecl:
			doc = n.Doc
		case *ast.GenDecl:
			doc = n.Doc
		case *ast.TypeSpec:
			doc = n.Doc
		case *ast.ValueSpec:
			doc = n.Doc
		case *ast.ImportSpec:
			doc = n.Doc
		case *ast.Field:
			doc = n.Doc
		}
		if doc != nil {
			docs[doc] = true
		}
	})
	return docs
}

// startsLine reports whether column col (1-based, in bytes) is the first
// non-blank position of line.
func startsLine(line string, col int) bool {
	if col < 1 || col-1 > len(line) {
		return false
	}
	return strings.TrimSpace(line[:col-1]) == ""
}
