// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	test    key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	test:    key.NewBinding(key.WithKeys("ctrl+t")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y", "Y")),
	no:      key.NewBinding(key.WithKeys("n", "N")),
}
