package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindModuleRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/app\n\ngo 1.24.0\n")

	nested := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := findModuleRoot(nested)
	require.NoError(t, err)
	require.Equal(t, root, got)
}

func TestFindModuleRootMissing(t *testing.T) {
	// A temp dir fresh off the root has no go.mod anywhere up the chain
	// in practice, but guard against a go.mod in a parent by nesting.
	dir := t.TempDir()
	_, err := findModuleRoot(dir)
	if err == nil {
		t.Skip("a parent of TempDir carries a go.mod on this machine")
	}
	require.Contains(t, err.Error(), "no go.mod")
}

func TestModuleInfo(t *testing.T) {
	tests := []struct {
		name      string
		gomod     string
		wantPath  string
		wantWeave bool
	}{
		{
			name:      "requires the facade",
			gomod:     "module example.com/app\n\ngo 1.24.0\n\nrequire github.com/kolkov/weave v0.1.0\n",
			wantPath:  "example.com/app",
			wantWeave: true,
		},
		{
			name:      "does not require the facade",
			gomod:     "module example.com/app\n\ngo 1.24.0\n",
			wantPath:  "example.com/app",
			wantWeave: false,
		},
		{
			name:      "is the facade module itself",
			gomod:     "module github.com/kolkov/weave\n\ngo 1.24.0\n",
			wantPath:  "github.com/kolkov/weave",
			wantWeave: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "go.mod", tt.gomod)

			path, hasFacade, err := moduleInfo(root)
			require.NoError(t, err)
			require.Equal(t, tt.wantPath, path)
			require.Equal(t, tt.wantWeave, hasFacade)
		})
	}
}

func TestModuleInfoBadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "this is not a module file {{{")

	_, _, err := moduleInfo(root)
	require.Error(t, err)
}
