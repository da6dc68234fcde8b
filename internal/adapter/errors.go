// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package adapter

import "errors"

var (
	// ErrUnauthorized maps 401/403: the token is missing on the server
	// side, expired, or lacks the required plan.
	ErrUnauthorized = errors.New("api token rejected")

	// ErrNotFound maps 404: the requested group is not tracked.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited maps 429: the server-side quota is exhausted despite
	// the client-side limiter.
	ErrRateLimited = errors.New("rate limited by server")

	// ErrTimeout covers an expired request deadline, whether from the
	// configured timeout or the caller's context.
	ErrTimeout = errors.New("request timed out")

	// ErrBadResponse covers a 2xx response whose body cannot be decoded
	// as the expected JSON shape.
	ErrBadResponse = errors.New("malformed response from api")
)
