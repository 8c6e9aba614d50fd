// modinfo.go locates and inspects the enclosing Go module.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

const facadeModule = "github.com/kolkov/weave"

// findModuleRoot walks up from dir to the nearest directory containing a
// go.mod file.
func findModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found in %s or any parent", dir)
		}
		dir = parent
	}
}

// moduleInfo parses the go.mod at root and reports the module path and
// whether the module can see the weave facade (it requires it, or it is
// the facade module itself).
func moduleInfo(root string) (path string, hasFacade bool, err error) {
	gomod := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", false, err
	}
	mf, err := modfile.Parse(gomod, data, nil)
	if err != nil {
		return "", false, fmt.Errorf("parsing %s: %w", gomod, err)
	}
	if mf.Module == nil {
		return "", false, fmt.Errorf("%s has no module directive", gomod)
	}
	path = mf.Module.Mod.Path
	if path == facadeModule {
		return path, true, nil
	}
	for _, r := range mf.Require {
		if r.Mod.Path == facadeModule {
			return path, true, nil
		}
	}
	return path, false, nil
}
