package table

// Tone is the semantic colour of a cell.
type Tone int

const (
	ToneDefault Tone = iota
	ToneSuccess
	ToneError
	ToneWarning
	ToneInfo
	TonePrimary
	ToneSecondary
)

var toneNames = [...]string{"default", "success", "error", "warning", "info", "primary", "secondary"}

func (t Tone) String() string {
	if int(t) < len(toneNames) {
		return toneNames[t]
	}
	return "default"
}

// ANSI SGR codes per tone. Every code has two digits so painted cells in a
// column grow by the same number of bytes and tabwriter keeps them aligned.
var toneCodes = map[Tone]string{
	ToneDefault:   "39",
	ToneSuccess:   "32",
	ToneError:     "31",
	ToneWarning:   "33",
	ToneInfo:      "36",
	TonePrimary:   "34",
	ToneSecondary: "35",
}

// Paint wraps s in the tone's colour; with color off s is returned as is.
func Paint(s string, t Tone, color bool) string {
	code, ok := toneCodes[t]
	if !color || !ok {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
