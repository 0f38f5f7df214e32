// Package astmap extracts top-level declarations and their doc comments from Go files.
package astmap

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Decl describes a top-level function, method or type declaration.
type Decl struct {
	Name     string // with receiver for methods, e.g. "(*Server).Handle"
	Kind     string // "func" or "type"
	Line     int
	Exported bool
	DocLines int // lines spanned by the doc comment, 0 if undocumented
}

// FileDecls parses the given Go source file and returns its declarations in
// source order.
func FileDecls(filename string) ([]*Decl, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("astmap: parse %s: %w", filename, err)
	}
	return fileDecls(fset, f), nil
}

// SourceDecls is FileDecls for source already in memory.
func SourceDecls(filename string, src []byte) ([]*Decl, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("astmap: parse %s: %w", filename, err)
	}
	return fileDecls(fset, f), nil
}

func fileDecls(fset *token.FileSet, f *ast.File) []*Decl {
	var decls []*Decl
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			decls = append(decls, &Decl{
				Name:     funcName(d),
				Kind:     "func",
				Line:     physLine(fset, d.Pos()),
				Exported: d.Name.IsExported(),
				DocLines: docLines(fset, d.Doc),
			})
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				// An unparenthesized declaration carries its doc on the GenDecl.
				if doc == nil && !d.Lparen.IsValid() {
					doc = d.Doc
				}
				decls = append(decls, &Decl{
					Name:     ts.Name.Name,
					Kind:     "type",
					Line:     physLine(fset, ts.Pos()),
					Exported: ts.Name.IsExported(),
					DocLines: docLines(fset, doc),
				})
			}
		}
	}
	return decls
}

func docLines(fset *token.FileSet, cg *ast.CommentGroup) int {
	if cg == nil {
		return 0
	}
	return physLine(fset, cg.End()) - physLine(fset, cg.Pos()) + 1
}

// physLine returns the physical line of p, ignoring //line directives.
func physLine(fset *token.FileSet, p token.Pos) int {
	return fset.PositionFor(p, false).Line
}

// funcName returns the qualified name of a function declaration.
// For methods, it includes the receiver type: "(*Type).Method" or "(Type).Method".
func funcName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}

	recv := fn.Recv.List[0].Type
	return fmt.Sprintf("(%s).%s", exprString(recv), fn.Name.Name)
}

// exprString returns a simple string representation of a type expression.
func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.ParenExpr:
		return exprString(t.X)
	case *ast.IndexExpr:
		return exprString(t.X) + "[" + exprString(t.Index) + "]"
	case *ast.IndexListExpr:
		s := exprString(t.X) + "["
		for i, idx := range t.Indices {
			if i > 0 {
				s += ", "
			}
			s += exprString(idx)
		}
		return s + "]"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
