// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/tui"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

const (
	roleServe = "serve"
	roleCLI   = "cli"

	statusProbeTimeout = 2 * time.Second
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local control API and the periodic push worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, _, err := opts.openApp(cmd.Context(), roleServe)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(cmd.Context())
		},
	}
}

func newPullCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the local tables with the remote snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, _, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			orchestrator := app.Services().Orchestrator
			if err := orchestrator.PullStored(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d tables from the remote database\n", len(orchestrator.Unit()))
			return nil
		},
	}
}

func newPushCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the remote tables with the local snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, _, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.Services().Orchestrator.Push(cmd.Context(), force)
			printPushReport(cmd.OutOrStdout(), report)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "wait for a running sync instead of skipping")
	return cmd
}

func printPushReport(w io.Writer, report models.PushReport) {
	fmt.Fprintf(w, "Push %s\n", report.Outcome)
	for _, result := range report.Tables {
		if result.Error != "" {
			fmt.Fprintf(w, "  %-14s failed: %s\n", result.Table, result.Error)
			continue
		}
		fmt.Fprintf(w, "  %-14s %d rows\n", result.Table, result.Rows)
	}
}

func newSetupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure the remote connection interactively",
		Long: `Edit the remote connection profile. The profile is saved only after a
pull with it succeeded, so a wrong profile never replaces a working one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, log, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			profile, err := tui.New(app.Services(), log).SetupFlow(cmd.Context())
			if errors.Is(err, tui.ErrUserQuit) {
				fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled, settings unchanged")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s, local data refreshed\n", profile.BridgeURL)
			return nil
		},
	}
}

func newTestCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check that the bridge answers with the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, _, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			services := app.Services()
			profile, err := services.Settings.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !profile.IsComplete() {
				return service.ErrNotConfigured
			}
			if err := services.Orchestrator.TestConnection(cmd.Context(), profile); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Bridge answered, connection works")
			return nil
		},
	}
}

func newResetCommand(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every local row and the stored connection settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, log, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			confirmed := yes
			if !confirmed {
				confirmed, err = tui.New(app.Services(), log).ConfirmReset()
				if err != nil {
					return err
				}
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
				return nil
			}

			if err := app.Services().Orchestrator.FactoryReset(cmd.Context(), confirmed); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Local data and settings were deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state and the stored connection",
		Long: `Show the sync state. When a serve process is running on the configured
address its live status is shown, otherwise the state of this process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, log, err := opts.openApp(cmd.Context(), roleCLI)
			if err != nil {
				return err
			}
			defer app.Close()

			services := app.Services()
			profile, err := services.Settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			status, ok := fetchServeStatus(cmd.Context(), cfg.Server, log)
			if !ok {
				status = services.Orchestrator.Status()
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatus(status, profile, services.Orchestrator.Unit()))
			return nil
		},
	}
}

// fetchServeStatus asks a running serve process for its status.
func fetchServeStatus(ctx context.Context, cfg config.ClientServer, log *logger.Logger) (models.SyncStatus, bool) {
	var status models.SyncStatus

	resp, err := utils.NewHTTPClient(log).
		SetTimeout(statusProbeTimeout).
		R().
		SetContext(ctx).
		SetResult(&status).
		Get("http://" + cfg.HTTPAddress + "/api/sync/status")
	if err != nil || !resp.IsSuccess() {
		log.Debug().Err(err).Str("func", "fetchServeStatus").Msg("serve process is not reachable")
		return models.SyncStatus{}, false
	}

	return status, true
}
