package cow

// Mode is a preset eye/tongue pairing matching the classic cowsay face
// flags.
type Mode struct {
	Name   string
	Eyes   string
	Tongue string
}

var modes = []Mode{
	{Name: "borg", Eyes: "==", Tongue: "  "},
	{Name: "dead", Eyes: "xx", Tongue: "U "},
	{Name: "greedy", Eyes: "$$", Tongue: "  "},
	{Name: "paranoid", Eyes: "@@", Tongue: "  "},
	{Name: "stoned", Eyes: "**", Tongue: "U "},
	{Name: "tired", Eyes: "--", Tongue: "  "},
	{Name: "wired", Eyes: "OO", Tongue: "  "},
	{Name: "young", Eyes: "..", Tongue: "  "},
}

// Modes lists the preset faces in stable order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ModeNamed returns the preset with the given name.
func ModeNamed(name string) (Mode, bool) {
	for _, mode := range modes {
		if mode.Name == name {
			return mode, true
		}
	}
	return Mode{}, false
}

// WithMode applies a preset's eyes and tongue.
func WithMode(mode Mode) Option {
	return func(r *Renderer) {
		r.eyes = mode.Eyes
		r.tongue = mode.Tongue
	}
}
