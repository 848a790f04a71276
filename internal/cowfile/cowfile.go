// Package cowfile loads and parses cow figure templates.
package cowfile

// Cowfile is a named figure template.
type Cowfile struct {
	Name     string
	Source   string // file path or "builtin"
	Template string // raw source, heredoc not yet extracted
}
