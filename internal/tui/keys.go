// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding. Letter keys only apply while no text input
// has focus.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	dashboard key.Binding
	watchlist key.Binding
	settings  key.Binding
	signOut   key.Binding
	theme     key.Binding
	info      key.Binding

	search         key.Binding
	filter         key.Binding
	priceRange     key.Binding
	sentimentRange key.Binding
	source         key.Binding
	star           key.Binding
	convert        key.Binding
	currency       key.Binding
	remove         key.Binding

	emailAlerts key.Binding
	generate    key.Binding
	reveal      key.Binding
	copy        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),

	dashboard: key.NewBinding(key.WithKeys("d")),
	watchlist: key.NewBinding(key.WithKeys("w")),
	settings:  key.NewBinding(key.WithKeys("s")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	theme:     key.NewBinding(key.WithKeys("t")),
	info:      key.NewBinding(key.WithKeys("i")),

	search:         key.NewBinding(key.WithKeys("/")),
	filter:         key.NewBinding(key.WithKeys("f")),
	priceRange:     key.NewBinding(key.WithKeys("p")),
	sentimentRange: key.NewBinding(key.WithKeys("r")),
	source:         key.NewBinding(key.WithKeys("c")),
	star:           key.NewBinding(key.WithKeys("*", "a")),
	convert:        key.NewBinding(key.WithKeys("v")),
	currency:       key.NewBinding(key.WithKeys("u")),
	remove:         key.NewBinding(key.WithKeys("x", "delete")),

	emailAlerts: key.NewBinding(key.WithKeys("e")),
	generate:    key.NewBinding(key.WithKeys("g")),
	reveal:      key.NewBinding(key.WithKeys("r")),
	copy:        key.NewBinding(key.WithKeys("y")),
}
