package astmap

import (
	"go/ast"
	"path/filepath"
	"runtime"
	"testing"
)

func testdataDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "testdata", "sample_source")
}

func TestFileDecls(t *testing.T) {
	decls, err := FileDecls(filepath.Join(testdataDir(), "sample.go"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Decl{
		{Name: "Adder", Kind: "type", Line: 5, Exported: true, DocLines: 1},
		{Name: "Pair", Kind: "type", Line: 11, Exported: true, DocLines: 1},
		{Name: "counter", Kind: "type", Line: 13, Exported: false, DocLines: 0},
		{Name: "(Pair).Sum", Kind: "func", Line: 19, Exported: true, DocLines: 3},
		{Name: "(*counter).inc", Kind: "func", Line: 23, Exported: false, DocLines: 0},
		{Name: "Combine", Kind: "func", Line: 30, Exported: true, DocLines: 3},
		{Name: "Undocumented", Kind: "func", Line: 34, Exported: true, DocLines: 0},
	}

	if len(decls) != len(want) {
		for _, d := range decls {
			t.Logf("got %+v", *d)
		}
		t.Fatalf("got %d decls, want %d", len(decls), len(want))
	}
	for i, w := range want {
		if *decls[i] != w {
			t.Errorf("decl[%d] = %+v, want %+v", i, *decls[i], w)
		}
	}
}

func TestFileDecls_BadFile(t *testing.T) {
	_, err := FileDecls("/nonexistent/file.go")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestSourceDecls(t *testing.T) {
	src := []byte("package p\n\n// F is documented.\nfunc F() {}\n")
	decls, err := SourceDecls("p.go", src)
	if err != nil {
		t.Fatal(err)
	}
	if len(decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(decls))
	}
	if decls[0].Name != "F" || decls[0].DocLines != 1 || decls[0].Line != 4 {
		t.Errorf("decl = %+v", *decls[0])
	}

	if _, err := SourceDecls("bad.go", []byte("package")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSourceDecls_LineDirective(t *testing.T) {
	src := []byte("package p\n\nvar a = 1\n//line gen.y:1\n\nvar b = 2\n\n// T is documented.\ntype T int\n\n// G is documented\n// over two lines.\nfunc G() {}\n")
	decls, err := SourceDecls("p.go", src)
	if err != nil {
		t.Fatal(err)
	}

	want := []Decl{
		{Name: "T", Kind: "type", Line: 9, Exported: true, DocLines: 1},
		{Name: "G", Kind: "func", Line: 13, Exported: true, DocLines: 2},
	}
	if len(decls) != len(want) {
		t.Fatalf("got %d decls, want %d", len(decls), len(want))
	}
	for i, w := range want {
		if *decls[i] != w {
			t.Errorf("decl[%d] = %+v, want %+v", i, *decls[i], w)
		}
	}
}

// TestFileDecls_Generics tests parsing of generic type receivers, which
// exercise the IndexExpr (single type param) and IndexListExpr (multiple
// type params) branches of exprString.
func TestFileDecls_Generics(t *testing.T) {
	decls, err := FileDecls(filepath.Join(testdataDir(), "generics.go"))
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]bool{
		"Container":            false,
		"Pair":                 false,
		"(Container[T]).Get":   false,
		"(*Container[T]).Set":  false,
		"(Pair[K, V]).GetKey":  false,
		"(*Pair[K, V]).SetKey": false,
	}

	for _, d := range decls {
		if _, ok := expected[d.Name]; ok {
			expected[d.Name] = true
		} else {
			t.Errorf("unexpected declaration: %s", d.Name)
		}
		if d.Line == 0 {
			t.Errorf("declaration %s has zero line number", d.Name)
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("expected declaration not found: %s", name)
		}
	}
}

func TestExprString_Default(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{&ast.CompositeLit{}, "*ast.CompositeLit"},
		{&ast.CallExpr{}, "*ast.CallExpr"},
		{&ast.ParenExpr{X: &ast.Ident{Name: "T"}}, "T"},
	}
	for _, tt := range tests {
		if got := exprString(tt.expr); got != tt.want {
			t.Errorf("exprString(%T) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}
