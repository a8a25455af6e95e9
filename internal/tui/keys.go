package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	tab      key.Binding
	backtab  key.Binding
	open     key.Binding
	edit     key.Binding
	pdf      key.Binding
	customer key.Binding
	delete   key.Binding
	clear    key.Binding
	reload   key.Binding
	yes      key.Binding
	no       key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l", " ")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	open:     key.NewBinding(key.WithKeys("enter")),
	edit:     key.NewBinding(key.WithKeys("e")),
	pdf:      key.NewBinding(key.WithKeys("p")),
	customer: key.NewBinding(key.WithKeys("o")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	clear:    key.NewBinding(key.WithKeys("ctrl+r")),
	reload:   key.NewBinding(key.WithKeys("ctrl+l")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
}
