package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	add       key.Binding
	sync      key.Binding
	edit      key.Binding
	delete    key.Binding
	notes     key.Binding
	copyPhone key.Binding
	copyEmail key.Binding
	buildInfo key.Binding
	save      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	add:       key.NewBinding(key.WithKeys("a")),
	sync:      key.NewBinding(key.WithKeys("s")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	notes:     key.NewBinding(key.WithKeys("n")),
	copyPhone: key.NewBinding(key.WithKeys("c")),
	copyEmail: key.NewBinding(key.WithKeys("u")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
}
