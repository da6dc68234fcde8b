// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package adapter provides the transport layer for the ransomware.live Pro
// API.
//
// The primary abstraction is [API], which decouples the service layer from
// the HTTP transport. The package ships one implementation built on resty
// ([NewHTTPAPIAdapter]) that handles authentication headers, retries on
// transient server errors, and client-side rate limiting.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by classify/mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrUnauthorized]
// for 401/403, [ErrTimeout] for an expired deadline).
package adapter

import (
	"context"
	"time"

	"github.com/ransomwatch/ransomwatch/internal/ratelimit"
	"github.com/ransomwatch/ransomwatch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

// API defines the read operations the tool performs against the remote
// intelligence service. Implementations are responsible for authentication,
// rate limiting, retry policy, and mapping transport errors to the sentinel
// values defined in this package.
type API interface {
	// Groups fetches the list of tracked ransomware groups.
	Groups(ctx context.Context) (models.GroupsResponse, error)

	// GroupInfo fetches the detailed record for one group. name must
	// already be normalized (see models.NormalizeGroupName); it is
	// path-escaped before being placed in the request URL. Returns
	// [ErrNotFound] (wrapped) when the service does not track the group.
	GroupInfo(ctx context.Context, name string) (models.GroupDetail, error)

	// RecentVictims fetches the most recently disclosed victim records.
	// The service controls the window size; truncation to the user's
	// limit happens in the service layer.
	RecentVictims(ctx context.Context) (models.VictimsResponse, error)

	// Stats fetches the service-wide counters.
	Stats(ctx context.Context) (models.StatsResponse, error)
}

// Gate blocks until the client-side rate budget allows another request and
// exposes its rolling counters for debug logging. *ratelimit.Limiter
// satisfies it.
type Gate interface {
	Wait(ctx context.Context) (waited time.Duration, err error)
	Stats() ratelimit.Stats
}
