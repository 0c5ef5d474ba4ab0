// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/internal/client"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
)

type buildInfo struct {
	version string
	date    string
	commit  string
}

// rootOptions holds the configuration flags shared by every command.
type rootOptions struct {
	flags *config.Flags
}

func newRootCommand(info buildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sitesync",
		Short: "Offline-first sync between the local site database and the remote one",
		Long: `sitesync keeps an embedded local database consistent with a remote
relational database reachable only through an HTTP bridge.

Pull replaces the local tables with the remote snapshot. Push replaces the
remote tables with the local snapshot. Local writes trigger a background push.`,
		Version:       info.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("sitesync %s (built %s, commit %s)\n", info.version, info.date, info.commit))

	opts.flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newServeCommand(opts),
		newPullCommand(opts),
		newPushCommand(opts),
		newSetupCommand(opts),
		newTestCommand(opts),
		newResetCommand(opts),
		newStatusCommand(opts),
	)

	return cmd
}

// openApp loads the merged configuration and wires the runtime. The serve
// command logs to stdout; the interactive commands log to the rotating file
// so the terminal stays readable.
func (o *rootOptions) openApp(ctx context.Context, role string) (*client.App, *config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(o.flags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	var log *logger.Logger
	if role == roleServe {
		log = logger.NewLogger(role)
	} else {
		log = logger.NewClientLogger(role, logger.FileOptions{Path: cfg.Log.File})
	}

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "rootOptions.openApp").Msg("init app error")
		return nil, nil, nil, err
	}

	return app, cfg, log, nil
}
