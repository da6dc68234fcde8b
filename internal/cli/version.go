// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import "fmt"

func (a *app) runVersion() int {
	fmt.Fprintf(a.stdout, "Build version: %s\n", a.build.Version())
	fmt.Fprintf(a.stdout, "Build date: %s\n", a.build.Date())
	fmt.Fprintf(a.stdout, "Build commit: %s\n", a.build.Commit())
	return ExitOK
}
