package cowfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCowfile = "$the_cow = <<EOC;\n  ^__^\nEOC\n"

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.cow")

	if err := os.WriteFile(path, []byte(sampleCowfile), 0644); err != nil {
		t.Fatalf("write cowfile: %v", err)
	}

	cowfile, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cowfile.Name != "sample" {
		t.Fatalf("expected name sample, got %q", cowfile.Name)
	}
	if cowfile.Source != path {
		t.Fatalf("expected source %q, got %q", path, cowfile.Source)
	}
	if cowfile.Template != sampleCowfile {
		t.Fatalf("unexpected template: %q", cowfile.Template)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.cow")); err == nil {
		t.Fatal("expected error for missing cowfile")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zebra.cow", "ant.cow", "ignored.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sampleCowfile), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cows, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if len(cows) != 2 {
		t.Fatalf("expected 2 cowfiles, got %d", len(cows))
	}
	if cows[0].Name != "ant" || cows[1].Name != "zebra" {
		t.Fatalf("expected sorted names, got %q, %q", cows[0].Name, cows[1].Name)
	}
}

func TestLoadDirMissing(t *testing.T) {
	cows, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(cows) != 0 {
		t.Fatalf("expected no cowfiles, got %d", len(cows))
	}
}

func TestBuiltins(t *testing.T) {
	cows, err := Builtins()
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}
	if len(cows) < 5 {
		t.Fatalf("expected at least 5 builtin cowfiles, got %d", len(cows))
	}

	names := make(map[string]bool, len(cows))
	for i, cowfile := range cows {
		if cowfile.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", cowfile.Source)
		}
		if cowfile.Name == "" {
			t.Fatal("builtin cowfile missing name")
		}
		if i > 0 && cows[i-1].Name > cowfile.Name {
			t.Fatalf("builtins not sorted: %q before %q", cows[i-1].Name, cowfile.Name)
		}
		names[cowfile.Name] = true
	}

	if !names["default"] {
		t.Fatal("expected a builtin named default")
	}
}

func TestDefaultMatchesBuiltin(t *testing.T) {
	if !strings.Contains(Default(), "$the_cow") {
		t.Fatal("default cow missing figure marker")
	}
	if !strings.Contains(Default(), "$eyes") {
		t.Fatal("default cow missing eyes token")
	}
}

func TestLookupShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.cow")
	if err := os.WriteFile(path, []byte(sampleCowfile), 0644); err != nil {
		t.Fatalf("write cowfile: %v", err)
	}
	t.Setenv(EnvCowPath, dir)

	cowfile, err := Lookup("default")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if cowfile.Source != path {
		t.Fatalf("expected disk cowfile to shadow builtin, got source %q", cowfile.Source)
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Setenv(EnvCowPath, t.TempDir())

	if _, err := Lookup("no-such-cow"); err == nil {
		t.Fatal("expected error for unknown cowfile")
	}
}
