package pname_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// corePackages are the library packages, relative to pkg/.
var corePackages = []string{
	"dictionary",
	"dictionary/loader",
	"format",
	"pname",
	"resolve",
	"romaji",
	"token",
}

// forbiddenStdlib lists standard packages that would give the core
// filesystem, network or process access.
var forbiddenStdlib = map[string]bool{
	"os":        true,
	"os/exec":   true,
	"net":       true,
	"net/http":  true,
	"log":       true,
	"log/slog":  true,
	"syscall":   true,
	"io/ioutil": true,
}

func eachImport(t *testing.T, fn func(pkg, file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()

	for _, pkg := range corePackages {
		dir := filepath.Join("..", filepath.FromSlash(pkg))
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
				continue
			}
			if strings.HasSuffix(entry.Name(), "_test.go") {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", path, err)
				continue
			}
			for _, imp := range f.Imports {
				fn(pkg, entry.Name(), strings.Trim(imp.Path.Value, `"`))
			}
		}
	}
}

// TestCoreDoesNotImportInternal verifies pkg/... never reaches into internal/.
func TestCoreDoesNotImportInternal(t *testing.T) {
	eachImport(t, func(pkg, file, importPath string) {
		if strings.Contains(importPath, "/internal/") {
			t.Errorf("pkg/%s/%s imports internal package: %s", pkg, file, importPath)
		}
	})
}

// TestCorePerformsNoIO verifies the core stays free of file, network and
// logging dependencies. Those belong to the front-ends in internal/.
func TestCorePerformsNoIO(t *testing.T) {
	eachImport(t, func(pkg, file, importPath string) {
		if forbiddenStdlib[importPath] {
			t.Errorf("pkg/%s/%s imports forbidden package: %s", pkg, file, importPath)
		}
	})
}

// TestCoreExternalImports verifies the only third-party code reachable from
// the core is golang.org/x/text, the kagome morphological analyzer used by
// the romanizer and the YAML decoder used by the loader.
func TestCoreExternalImports(t *testing.T) {
	allowedPrefixes := []string{
		"github.com/leapstack-labs/pname/pkg/",
		"github.com/ikawaha/kagome/v2/",
		"github.com/ikawaha/kagome-dict/",
		"golang.org/x/text/",
		"gopkg.in/yaml.v3",
	}

	eachImport(t, func(pkg, file, importPath string) {
		if !strings.Contains(importPath, ".") {
			return
		}
		for _, prefix := range allowedPrefixes {
			if strings.HasPrefix(importPath, prefix) {
				return
			}
		}
		t.Errorf("pkg/%s/%s imports forbidden package: %s", pkg, file, importPath)
	})
}
