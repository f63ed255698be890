// Package mood defines the closed set of moods a diary entry can carry.
package mood

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mood identifies one of the eight supported emotional states.
type Mood string

const (
	VeryHappy Mood = "very-happy"
	Happy     Mood = "happy"
	Good      Mood = "good"
	Normal    Mood = "normal"
	Tired     Mood = "tired"
	Sad       Mood = "sad"
	Angry     Mood = "angry"
	Sick      Mood = "sick"
)

// Default is used whenever an unknown or empty mood value shows up.
const Default = Normal

// Glyph carries the display metadata for a mood.
type Glyph struct {
	ID       Mood
	Symbol   string
	Label    string
	Aliases  []string
	Gradient [2]string // hex color stops, light to dark
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			ID:       VeryHappy,
			Symbol:   "😊",
			Label:    "very happy",
			Aliases:  []string{"very-happy", "veryhappy", "vh", "great"},
			Gradient: [2]string{"#facc15", "#fb923c"},
		}, {
			ID:       Happy,
			Symbol:   "😄",
			Label:    "happy",
			Aliases:  []string{"happy", "h"},
			Gradient: [2]string{"#fde047", "#eab308"},
		}, {
			ID:       Good,
			Symbol:   "🙂",
			Label:    "good",
			Aliases:  []string{"good", "g", "fine"},
			Gradient: [2]string{"#86efac", "#22c55e"},
		}, {
			ID:       Normal,
			Symbol:   "😐",
			Label:    "normal",
			Aliases:  []string{"normal", "n", "ok", "okay", "meh"},
			Gradient: [2]string{"#d1d5db", "#6b7280"},
		}, {
			ID:       Tired,
			Symbol:   "😴",
			Label:    "tired",
			Aliases:  []string{"tired", "t", "sleepy"},
			Gradient: [2]string{"#93c5fd", "#3b82f6"},
		}, {
			ID:       Sad,
			Symbol:   "😢",
			Label:    "sad",
			Aliases:  []string{"sad", "down"},
			Gradient: [2]string{"#60a5fa", "#6366f1"},
		}, {
			ID:       Angry,
			Symbol:   "😠",
			Label:    "angry",
			Aliases:  []string{"angry", "a", "mad"},
			Gradient: [2]string{"#f87171", "#dc2626"},
		}, {
			ID:       Sick,
			Symbol:   "🤒",
			Label:    "sick",
			Aliases:  []string{"sick", "ill"},
			Gradient: [2]string{"#c084fc", "#9333ea"},
		},
	}
}

// All returns the eight moods in display order.
func All() []Mood {
	glyphs := DefaultGlyphs()
	moods := make([]Mood, len(glyphs))
	for i, g := range glyphs {
		moods[i] = g.ID
	}
	return moods
}

// Glyph returns the display metadata for m, falling back to the default
// mood when m is not one of the known values.
func (m Mood) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.ID == m {
			return g
		}
	}
	return Default.Glyph()
}

func (m Mood) String() string {
	return string(m.Normalize())
}

// Valid reports whether m is one of the eight known moods.
func (m Mood) Valid() bool {
	for _, g := range DefaultGlyphs() {
		if g.ID == m {
			return true
		}
	}
	return false
}

// Normalize maps unknown values onto the default mood.
func (m Mood) Normalize() Mood {
	if m.Valid() {
		return m
	}
	return Default
}

// ForAlias resolves a CLI-friendly alias ("vh", "ok", ...) to a mood.
func ForAlias(alias string) (Mood, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	if needle == "" {
		return Default, nil
	}
	for _, g := range DefaultGlyphs() {
		for _, a := range g.Aliases {
			if a == needle {
				return g.ID, nil
			}
		}
	}
	return Default, fmt.Errorf("unknown mood %q", alias)
}

// Score places moods on a 1..5 scale used by the average-mood statistic.
func (m Mood) Score() int {
	switch m.Normalize() {
	case VeryHappy:
		return 5
	case Happy:
		return 4
	case Good:
		return 4
	case Normal:
		return 3
	case Tired:
		return 2
	case Sad, Angry, Sick:
		return 1
	}
	return 3
}

// Swatch returns the hex midpoint of the mood's gradient, suitable for a
// single terminal color chip.
func (m Mood) Swatch() string {
	g := m.Glyph()
	from, err := colorful.Hex(g.Gradient[0])
	if err != nil {
		return g.Gradient[0]
	}
	to, err := colorful.Hex(g.Gradient[1])
	if err != nil {
		return g.Gradient[0]
	}
	return from.BlendLab(to, 0.5).Clamped().Hex()
}
