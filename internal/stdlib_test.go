package stdlib_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Stdlib import paths never contain a dot in their first element.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func TestStdlibOnlyPrimitives(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("primitives", "*.go"))
	if err != nil {
		t.Fatalf("Failed to list primitives sources: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("No primitives sources found")
	}

	fset := token.NewFileSet()
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		f, err := parser.ParseFile(fset, name, src, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatalf("Bad import in %s: %v", name, err)
			}
			if !isStdlib(path) {
				t.Errorf("%s imports non-stdlib package %s", name, path)
			}
		}
	}
}
