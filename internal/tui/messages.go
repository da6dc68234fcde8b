// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package tui

import "github.com/ransomwatch/ransomwatch/models"

// groupsLoaded delivers the initial group listing to the model.
type groupsLoaded struct {
	report models.GroupsReport
	err    error
}

// detailLoaded delivers one group's detail page to the model.
type detailLoaded struct {
	detail models.GroupDetail
	err    error
}
