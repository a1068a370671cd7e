package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
	preview    key.Binding
	esc        key.Binding
	copy       key.Binding
	rescan     key.Binding
	retry      key.Binding
	clearCache key.Binding
	buildInfo  key.Binding
	quit       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	pageUp:     key.NewBinding(key.WithKeys("pgup", "b")),
	pageDown:   key.NewBinding(key.WithKeys("pgdown", " ")),
	preview:    key.NewBinding(key.WithKeys("enter", "p")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	copy:       key.NewBinding(key.WithKeys("c")),
	rescan:     key.NewBinding(key.WithKeys("r")),
	retry:      key.NewBinding(key.WithKeys("r")),
	clearCache: key.NewBinding(key.WithKeys("x")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
