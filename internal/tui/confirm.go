// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const resetWarning = "Factory reset deletes every local row and the stored\n" +
	"connection settings. Remote data is not touched.\n\nContinue?"

type confirmModel struct {
	message   string
	confirmed bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.confirmed = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\n" + helpStyle.Render("y yes    n no"))
}
