// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/site-sync/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCommand(buildInfo{
		version: valueOrNA(buildVersion),
		date:    valueOrNA(buildDate),
		commit:  valueOrNA(buildCommit),
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", service.Reason(err))
		os.Exit(1)
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
