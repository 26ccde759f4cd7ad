package match

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/rps/internal/ui/layout"
)

type keyMap struct {
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Left     key.Binding
	Right    key.Binding
	Play     key.Binding
	NewMatch key.Binding
	Target   key.Binding
	Copy     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rock: key.NewBinding(
			key.WithKeys("r", "R", "shift+r"),
			key.WithHelp("r", "rock"),
		),
		Paper: key.NewBinding(
			key.WithKeys("p", "P", "shift+p"),
			key.WithHelp("p", "paper"),
		),
		Scissors: key.NewBinding(
			key.WithKeys("s", "S", "shift+s"),
			key.WithHelp("s", "scissors"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "play"),
		),
		NewMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new match"),
		),
		Target: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "target"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy summary"),
		),
	}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
