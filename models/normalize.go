// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidGroupName is returned when a user-supplied group name cannot be
// reduced to a form that is safe to place in an API path.
var ErrInvalidGroupName = errors.New("invalid group name")

var groupNamePattern = regexp.MustCompile(`^[a-z0-9-]{1,50}$`)

const maxGroupNameInput = 100

// NormalizeGroupName lowercases and trims a user-supplied group name and
// strips every character outside [a-z0-9-]. The result must be 1..50
// characters long; anything else, or raw input longer than 100 characters or
// containing path/markup metacharacters, yields [ErrInvalidGroupName].
//
// Group lookups are case-insensitive on the API side, so "LockBit3" and
// "lockbit3" resolve to the same record.
func NormalizeGroupName(name string) (string, error) {
	if name == "" || len(name) > maxGroupNameInput {
		return "", ErrInvalidGroupName
	}
	if strings.ContainsAny(name, `<>&"'/\`+"\x00") || strings.Contains(name, "..") {
		return "", ErrInvalidGroupName
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, normalized)

	if !groupNamePattern.MatchString(normalized) {
		return "", ErrInvalidGroupName
	}

	return normalized, nil
}
