// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal prompts of the CLI: the
// connection setup form and the factory reset confirmation.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	logger   *logger.Logger

	options []tea.ProgramOption
}

func New(services *service.Services, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{services: services, logger: logger, options: options}
}

// SetupFlow shows the connection form prefilled with the stored profile. The
// form only exits successfully once Configure has pulled with the entered
// profile and saved it.
func (t *TUI) SetupFlow(ctx context.Context) (models.ConnectionProfile, error) {
	stored, err := t.services.Settings.Load(ctx)
	if err != nil {
		return models.ConnectionProfile{}, fmt.Errorf("load settings: %w", err)
	}

	finalModel, err := tea.NewProgram(newSetupModel(ctx, t.services.Orchestrator, stored), t.options...).Run()
	if err != nil {
		return models.ConnectionProfile{}, err
	}

	result, ok := finalModel.(setupModel)
	if !ok {
		return models.ConnectionProfile{}, tea.ErrProgramKilled
	}
	if !result.saved {
		return models.ConnectionProfile{}, ErrUserQuit
	}

	t.logger.Info().
		Str("func", "TUI.SetupFlow").
		Str("host", result.profile.Host).
		Str("bridge_url", result.profile.BridgeURL).
		Msg("connection configured")

	return result.profile, nil
}

// ConfirmReset asks the user to confirm a factory reset.
func (t *TUI) ConfirmReset() (bool, error) {
	finalModel, err := tea.NewProgram(newConfirmModel(resetWarning), t.options...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.confirmed, nil
}
