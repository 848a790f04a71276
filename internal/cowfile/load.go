package cowfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads a single cowfile from disk. The cowfile name is the base file
// name without its extension.
func Load(path string) (*Cowfile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cowfile path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cowfile %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Cowfile{Name: name, Source: path, Template: string(data)}, nil
}

// LoadDir loads all cowfiles from a directory, sorted by name. A missing
// directory yields an empty result rather than an error.
func LoadDir(dir string) ([]*Cowfile, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Cowfile{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Cowfile{}, nil
		}
		return nil, fmt.Errorf("read cowfile dir %s: %w", dir, err)
	}

	cows := make([]*Cowfile, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".cow" {
			continue
		}
		cowfile, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		cows = append(cows, cowfile)
	}

	sort.Slice(cows, func(i, j int) bool {
		return cows[i].Name < cows[j].Name
	})

	return cows, nil
}
