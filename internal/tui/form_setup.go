// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/models"
)

const (
	fieldHost = iota
	fieldPort
	fieldUser
	fieldPassword
	fieldDatabase
	fieldBridgeURL
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldHost:      "Host",
	fieldPort:      "Port",
	fieldUser:      "User",
	fieldPassword:  "Password",
	fieldDatabase:  "Database",
	fieldBridgeURL: "Bridge URL",
}

// setupModel edits a connection profile. Enter runs Configure (pull with the
// candidate profile, save on success); ctrl+t only probes the bridge.
type setupModel struct {
	ctx          context.Context
	orchestrator service.SyncOrchestrator

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	busy    string
	errMsg  string
	infoMsg string

	profile models.ConnectionProfile
	saved   bool
}

func newSetupModel(ctx context.Context, orchestrator service.SyncOrchestrator, stored models.ConnectionProfile) setupModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].CharLimit = 512
	}
	inputs[fieldHost].Placeholder = "db.example.com"
	inputs[fieldPort].Placeholder = strconv.Itoa(models.DefaultRemotePort)
	inputs[fieldPort].CharLimit = 5
	inputs[fieldDatabase].Placeholder = "site_db"
	inputs[fieldBridgeURL].Placeholder = "https://example.com/bridge.php"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	inputs[fieldHost].SetValue(stored.Host)
	if stored.Port > 0 {
		inputs[fieldPort].SetValue(strconv.Itoa(stored.Port))
	}
	inputs[fieldUser].SetValue(stored.User)
	inputs[fieldPassword].SetValue(stored.Password)
	inputs[fieldDatabase].SetValue(stored.Database)
	inputs[fieldBridgeURL].SetValue(stored.BridgeURL)
	inputs[fieldHost].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return setupModel{
		ctx:          ctx,
		orchestrator: orchestrator,
		inputs:       inputs,
		spinner:      s,
	}
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configureDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.saved = true
		return m, tea.Quit

	case testDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.infoMsg = "Bridge answered, connection works"
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit), key.Matches(msg, keys.esc):
			return m, tea.Quit
		case m.busy != "":
			return m, nil
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit("Pulling remote data", m.cmdConfigure)
		case key.Matches(msg, keys.test):
			return m.submit("Testing connection", m.cmdTest)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m setupModel) submit(busy string, run func(models.ConnectionProfile) tea.Cmd) (tea.Model, tea.Cmd) {
	m.infoMsg = ""
	profile, err := m.toProfile()
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	if !profile.IsComplete() {
		m.errMsg = "Host, user, database and bridge URL are required"
		return m, nil
	}

	m.errMsg = ""
	m.busy = busy
	m.profile = profile
	return m, tea.Batch(m.spinner.Tick, run(profile))
}

func (m setupModel) cmdConfigure(profile models.ConnectionProfile) tea.Cmd {
	ctx, orchestrator := m.ctx, m.orchestrator
	return func() tea.Msg {
		return configureDoneMsg{err: orchestrator.Configure(ctx, profile)}
	}
}

func (m setupModel) cmdTest(profile models.ConnectionProfile) tea.Cmd {
	ctx, orchestrator := m.ctx, m.orchestrator
	return func() tea.Msg {
		return testDoneMsg{err: orchestrator.TestConnection(ctx, profile)}
	}
}

func (m *setupModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m setupModel) toProfile() (models.ConnectionProfile, error) {
	profile := models.ConnectionProfile{
		Host:      strings.TrimSpace(m.inputs[fieldHost].Value()),
		User:      strings.TrimSpace(m.inputs[fieldUser].Value()),
		Password:  m.inputs[fieldPassword].Value(),
		Database:  strings.TrimSpace(m.inputs[fieldDatabase].Value()),
		BridgeURL: strings.TrimSpace(m.inputs[fieldBridgeURL].Value()),
	}

	if raw := strings.TrimSpace(m.inputs[fieldPort].Value()); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return profile, errInvalidPort
		}
		profile.Port = port
	}

	return profile, nil
}

func (m setupModel) View() string {
	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(field(fieldLabels[i], "["+input.View()+"]"))
		b.WriteString("\n")
	}

	if m.busy != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busy)
		b.WriteString("...\n")
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.infoMsg))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REMOTE CONNECTION", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: pull and save │ ctrl+t: test │ esc: cancel")
}
