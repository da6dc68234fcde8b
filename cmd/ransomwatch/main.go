// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package main

import (
	"os"

	"github.com/ransomwatch/ransomwatch/internal/cli"
	"github.com/ransomwatch/ransomwatch/models"
)

// Set at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, build))
}
