// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package service

import "errors"

// ErrInvalidLimit is returned when the recent-victims limit falls outside
// [MinLimit, MaxLimit].
var ErrInvalidLimit = errors.New("invalid limit")
