package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// constLike reports whether a package-level var initializer is effectively
// immutable: an error sentinel, a compiled regexp or a composite literal.
func constLike(val ast.Expr) bool {
	switch v := val.(type) {
	case *ast.CompositeLit, *ast.BasicLit:
		return true
	case *ast.CallExpr:
		sel, ok := v.Fun.(*ast.SelectorExpr)
		if !ok {
			return false
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok {
			return false
		}
		switch pkg.Name + "." + sel.Sel.Name {
		case "errors.New", "fmt.Errorf", "regexp.MustCompile":
			return true
		}
	}
	return false
}

// mutableGlobals returns the package-level vars in src that are not
// compile-time assertions or const-like values.
func mutableGlobals(t *testing.T, fset *token.FileSet, name string, src any) []string {
	t.Helper()
	node, err := parser.ParseFile(fset, name, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	var bad []string
	for _, decl := range node.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, id := range vs.Names {
				if id.Name == "_" {
					continue
				}
				if i < len(vs.Values) && constLike(vs.Values[i]) {
					continue
				}
				bad = append(bad, id.Name)
			}
		}
	}
	return bad
}

func TestNoMutableGlobals(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	for _, pkg := range packages(t) {
		for _, f := range sourceFiles(t, pkg, false) {
			for _, name := range mutableGlobals(t, fset, f, nil) {
				t.Errorf("%s/%s: package-level var %s holds mutable state; inject it instead",
					pkg, filepath.Base(f), name)
			}
		}
	}
}

func TestMutableGlobalsDetection(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		`package p`,
		`import ("errors"; "regexp")`,
		`var ErrX = errors.New("x")`,
		`var re = regexp.MustCompile("a+")`,
		`var table = []int{1, 2}`,
		`var _ error = ErrX`,
		`var cache = make(map[string]int)`,
		`var counter int`,
	}, "\n")
	got := mutableGlobals(t, token.NewFileSet(), "p.go", src)
	if strings.Join(got, ",") != "cache,counter" {
		t.Errorf("mutableGlobals = %v, want [cache counter]", got)
	}
}
