// Package cow renders cowsay-style speech and thought balloons above
// ASCII-art figure templates.
//
// A Renderer is configured once through functional options and is then a
// pure function of that configuration: rendering performs no I/O and calling
// Render twice yields byte-identical output. Distinct renderers are safe to
// use concurrently.
package cow

import (
	"strings"
	"unicode"

	"github.com/mraflifirmansyah/arcanist/internal/balloon"
	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
)

// Action selects the message delivery mode, which controls the balloon
// border style and the $thoughts glyph.
type Action string

const (
	ActionSay   Action = "say"
	ActionThink Action = "think"
)

// Defaults for the face tokens.
const (
	DefaultEyes   = "oo"
	DefaultTongue = "  "
)

// Renderer holds an immutable render configuration.
type Renderer struct {
	template string
	eyes     string
	tongue   string
	action   Action
	text     string
}

// Option configures a Renderer at construction time.
type Option func(*Renderer)

// WithTemplate sets the raw cowfile source to render beneath the balloon.
func WithTemplate(source string) Option {
	return func(r *Renderer) { r.template = source }
}

// WithEyes sets the eye string, right-padded to two characters when shorter.
func WithEyes(eyes string) Option {
	return func(r *Renderer) { r.eyes = eyes }
}

// WithTongue sets the tongue string, right-padded to two characters when
// shorter.
func WithTongue(tongue string) Option {
	return func(r *Renderer) { r.tongue = tongue }
}

// WithAction selects say or think.
func WithAction(action Action) Option {
	return func(r *Renderer) { r.action = action }
}

// WithText sets the message text.
func WithText(text string) Option {
	return func(r *Renderer) { r.text = text }
}

// New builds a Renderer with the builtin default cow, default face tokens,
// and ActionSay, then applies opts in order. Later options win.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		template: cowfile.Default(),
		eyes:     DefaultEyes,
		tongue:   DefaultTongue,
		action:   ActionSay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render extracts the figure from the template, substitutes tokens, renders
// the balloon, and stitches balloon and figure together with trailing
// whitespace trimmed. The only failure mode is a *RenderError from the
// substitution pass.
func (r *Renderer) Render() (string, error) {
	figure := cowfile.Extract(r.template)

	figure, err := substitute(figure, r.eyes, r.tongue, r.action)
	if err != nil {
		return "", err
	}

	out := balloon.Render(r.text, r.action == ActionThink) + "\n" + figure
	return strings.TrimRightFunc(out, unicode.IsSpace), nil
}

// Say renders text in a speech balloon with the default cow.
func Say(text string, opts ...Option) (string, error) {
	return New(append([]Option{WithText(text), WithAction(ActionSay)}, opts...)...).Render()
}

// Think renders text in a thought balloon with the default cow.
func Think(text string, opts ...Option) (string, error) {
	return New(append([]Option{WithText(text), WithAction(ActionThink)}, opts...)...).Render()
}
