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
	nextPage  key.Binding
	prevPage  key.Binding
	refresh   key.Binding
	boards    key.Binding
	search    key.Binding
	login     key.Binding
	register  key.Binding
	logout    key.Binding
	join      key.Binding
	like      key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	nextPage:  key.NewBinding(key.WithKeys("n", "right")),
	prevPage:  key.NewBinding(key.WithKeys("p", "left")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	boards:    key.NewBinding(key.WithKeys("b")),
	search:    key.NewBinding(key.WithKeys("/")),
	login:     key.NewBinding(key.WithKeys("l")),
	register:  key.NewBinding(key.WithKeys("ctrl+n")),
	logout:    key.NewBinding(key.WithKeys("o")),
	join:      key.NewBinding(key.WithKeys("J")),
	like:      key.NewBinding(key.WithKeys("L")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
