package cowfile

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed builtin/*.cow
var builtinFS embed.FS

//go:embed builtin/default.cow
var defaultCow string

// Default returns the raw source of the builtin default cow.
func Default() string {
	return defaultCow
}

// Builtins returns the cowfiles bundled with the binary, sorted by name.
func Builtins() ([]*Cowfile, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin cowfiles: %w", err)
	}

	cows := make([]*Cowfile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin cowfile %s: %w", entry.Name(), err)
		}
		cows = append(cows, &Cowfile{
			Name:     strings.TrimSuffix(entry.Name(), ".cow"),
			Source:   "builtin",
			Template: string(data),
		})
	}

	sort.Slice(cows, func(i, j int) bool {
		return cows[i].Name < cows[j].Name
	})

	return cows, nil
}
