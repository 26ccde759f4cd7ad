package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/ui/layout"
	"github.com/abhisek/rps/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, the player is ahead
	MascotAlert                            // Orange, the computer is ahead
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ✊✋ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ✊✋ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ✊✋ │
└─────┘`

// mascotFor picks a variant from the session tally.
func mascotFor(rec layout.SessionRecord) MascotVariant {
	switch {
	case rec.Won > rec.Lost:
		return MascotCelebrating
	case rec.Lost > rec.Won:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
