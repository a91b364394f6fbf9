package halo

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/rileyhilliard/halo"

// externalImports walks the module-local imports reachable from dir and
// records every third-party import path in found.
func externalImports(t *testing.T, root, dir string, seen map[string]bool, found map[string]bool) {
	t.Helper()
	if seen[dir] {
		return
	}
	seen[dir] = true

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err)

		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)

			switch {
			case strings.HasPrefix(path, modulePath+"/"):
				rel := strings.TrimPrefix(path, modulePath+"/")
				externalImports(t, root, filepath.Join(root, filepath.FromSlash(rel)), seen, found)
			case strings.Contains(strings.SplitN(path, "/", 2)[0], "."):
				found[path] = true
			}
		}
	}
}

func TestLibraryStaysOffInteractiveStack(t *testing.T) {
	root := filepath.Join("..", "..")
	found := map[string]bool{}
	externalImports(t, root, ".", map[string]bool{}, found)

	require.NotEmpty(t, found)
	assert.True(t, found["github.com/charmbracelet/lipgloss"], "styling goes through lipgloss")
	for path := range found {
		assert.NotContains(t, path, "bubbletea", path)
		assert.NotContains(t, path, "charmbracelet/huh", path)
		assert.NotContains(t, path, "charmbracelet/bubbles", path)
		assert.NotContains(t, path, "spf13/", path)
	}
}
