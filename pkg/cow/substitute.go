package cow

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Cowfiles reference face tokens either bare ($eyes) or braced (${eyes}).
var (
	bracedToken = regexp.MustCompile(`\$\{([a-z]+)\}`)
	bareToken   = regexp.MustCompile(`\$([a-z]+)`)
)

// substitute replaces recognized tokens in the figure template. Unknown
// token names are preserved verbatim, delimiters included. The substitution
// pass refuses figures that are not valid UTF-8, the one input the pattern
// engine cannot process.
func substitute(figure, eyes, tongue string, action Action) (string, error) {
	if !utf8.ValidString(figure) {
		return "", &RenderError{Stage: "substitute", Err: errors.New("figure template is not valid UTF-8")}
	}

	thoughts := `\`
	if action == ActionThink {
		thoughts = "o"
	}
	values := map[string]string{
		"eyes":     padRight(eyes, 2),
		"tongue":   padRight(tongue, 2),
		"thoughts": thoughts,
	}

	out := bracedToken.ReplaceAllStringFunc(figure, func(match string) string {
		if value, ok := values[match[2:len(match)-1]]; ok {
			return value
		}
		return match
	})
	out = bareToken.ReplaceAllStringFunc(out, func(match string) string {
		if value, ok := values[match[1:]]; ok {
			return value
		}
		return match
	})

	return out, nil
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
