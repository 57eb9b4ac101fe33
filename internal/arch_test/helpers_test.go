// Package arch_test holds source-level checks over the internal packages:
// dependency layers, global state, GoDoc, interface placement and size.
package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

const (
	modulePath  = "github.com/papapumpkin/tnguide"
	internalPfx = modulePath + "/internal/"
)

// repoRoot walks up from this file to the directory holding go.mod.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	for dir := filepath.Dir(thisFile); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			t.Fatal("go.mod not found above arch_test")
		}
	}
}

func internalDirPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(repoRoot(t), "internal")
}

// internalPackages lists the package directories under internal/ that hold
// Go source, excluding arch_test.
func internalPackages(t *testing.T) []string {
	t.Helper()
	dir := internalDirPath(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		if len(goFilesIn(t, filepath.Join(dir, e.Name()))) > 0 {
			pkgs = append(pkgs, e.Name())
		}
	}
	slices.Sort(pkgs)
	return pkgs
}

// goFilesIn returns the non-test .go files in dir.
func goFilesIn(t *testing.T, dir string) []string {
	t.Helper()
	return listGoFiles(t, dir, false)
}

// listGoFiles returns the .go files in dir, sorted, with or without tests.
func listGoFiles(t *testing.T, dir string, withTests bool) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if !withTests && strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	slices.Sort(files)
	return files
}

func parseFile(t *testing.T, path string, mode parser.Mode) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, mode)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return f
}

// importPaths returns the deduplicated, sorted import paths of the
// non-test files in pkgDir.
func importPaths(t *testing.T, pkgDir string) []string {
	t.Helper()
	seen := map[string]bool{}
	for _, f := range goFilesIn(t, pkgDir) {
		for _, imp := range parseFile(t, f, parser.ImportsOnly).Imports {
			seen[strings.Trim(imp.Path.Value, `"`)] = true
		}
	}
	var out []string
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// importsOf returns the internal packages imported by pkgDir, by directory
// name (e.g. "catalog", "session").
func importsOf(t *testing.T, pkgDir string) []string {
	t.Helper()
	var out []string
	for _, p := range importPaths(t, pkgDir) {
		if rel, ok := strings.CutPrefix(p, internalPfx); ok {
			rel, _, _ = strings.Cut(rel, "/")
			out = append(out, rel)
		}
	}
	return slices.Compact(out)
}

// isGenerated reports whether the file carries a "Code generated" header.
func isGenerated(t *testing.T, path string) bool {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	head, _, _ := strings.Cut(string(data), "\npackage ")
	return strings.Contains(head, "Code generated")
}

// lineCount returns the number of lines in the file, counting a final line
// without a trailing newline.
func lineCount(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	n := strings.Count(string(data), "\n")
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// relPath returns path relative to the repository root for messages.
func relPath(t *testing.T, path string) string {
	t.Helper()
	rel, err := filepath.Rel(repoRoot(t), path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
