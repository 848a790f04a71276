package cowfile

import (
	"regexp"
	"strings"
)

// Classic cowfiles are Perl scripts that assign the figure to $the_cow as a
// heredoc closed by an EOC marker at the start of a line. The opening EOC may
// be quoted and followed by a semicolon.
const figureMarker = "$the_cow"

var (
	figureBlock = regexp.MustCompile(`(?s)EOC["']?;?[^\n]*\n(.*)\nEOC`)
	escapedChar = regexp.MustCompile(`(?s)\\(.)`)
	commentLine = regexp.MustCompile(`(?m)^#[^\n]*\n?`)
)

// Extract isolates the figure template from raw cowfile source.
//
// Heredoc blocks get a global unescape pass (backslash followed by any
// character collapses to that character). Sources without the $the_cow
// marker, or with a heredoc the block pattern cannot match, are treated as
// plain templates with comment lines removed.
func Extract(raw string) string {
	if strings.Contains(raw, figureMarker) {
		if match := figureBlock.FindStringSubmatch(raw); match != nil {
			return escapedChar.ReplaceAllString(match[1], "${1}")
		}
	}
	return commentLine.ReplaceAllString(raw, "")
}
