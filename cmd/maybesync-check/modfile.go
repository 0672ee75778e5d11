// go.mod inspection for the checked module.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// RequiresFacade reports whether the module containing dir requires the
// facade (or is the facade module itself).
//
// The go.mod is located by walking up from dir, the same way the go tool
// resolves the main module.
func RequiresFacade(dir string) (bool, error) {
	path, err := findGoMod(dir)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", path, err)
	}

	if mf.Module != nil && mf.Module.Mod.Path == facadeModule {
		return true, nil
	}
	for _, req := range mf.Require {
		if req.Mod.Path == facadeModule {
			return true, nil
		}
	}
	return false, nil
}

// findGoMod walks up from dir until it finds a go.mod.
func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		abs = parent
	}
}
