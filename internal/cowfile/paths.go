package cowfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvCowPath names the environment variable holding extra cowfile
// directories, separated like PATH.
const EnvCowPath = "ARCANIST_COWPATH"

// SearchPaths returns cowfile directories in precedence order.
func SearchPaths() []string {
	paths := make([]string, 0, 3)
	if env := os.Getenv(EnvCowPath); env != "" {
		paths = append(paths, filepath.SplitList(env)...)
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "arcanist", "cows"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "arcanist", "cows"))
	return paths
}

// LoadAll returns cowfiles from the search paths plus the builtins, with
// first-hit precedence: an on-disk cowfile shadows a builtin of the same name.
func LoadAll() ([]*Cowfile, error) {
	seen := make(map[string]*Cowfile)
	order := make([]string, 0)

	for _, path := range SearchPaths() {
		cows, err := LoadDir(path)
		if err != nil {
			return nil, err
		}
		for _, cowfile := range cows {
			if _, exists := seen[cowfile.Name]; exists {
				continue
			}
			seen[cowfile.Name] = cowfile
			order = append(order, cowfile.Name)
		}
	}

	builtins, err := Builtins()
	if err != nil {
		return nil, err
	}
	for _, cowfile := range builtins {
		if _, exists := seen[cowfile.Name]; exists {
			continue
		}
		seen[cowfile.Name] = cowfile
		order = append(order, cowfile.Name)
	}

	resolved := make([]*Cowfile, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// Lookup resolves a cowfile by name across the search paths and builtins.
func Lookup(name string) (*Cowfile, error) {
	all, err := LoadAll()
	if err != nil {
		return nil, err
	}
	for _, cowfile := range all {
		if cowfile.Name == name {
			return cowfile, nil
		}
	}
	return nil, fmt.Errorf("unknown cowfile %q", name)
}
