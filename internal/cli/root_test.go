// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransomwatch/ransomwatch/models"
)

// testAPI serves canned payloads and counts every request, so tests can
// assert that certain paths never touch the network.
func testAPI(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/groups", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"groups": [
			{"group": "lockbit3", "altname": "lockbit", "victims": 120},
			{"group": "quietgroup", "victims": 3}
		]}`))
	})
	mux.HandleFunc("/groups/lockbit3", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"group": "lockbit3", "victims": 120,
			"first_seen": "2022-07-01", "last_seen": "2026-08-01",
			"description": "Third major revision of the operation."}`))
	})
	mux.HandleFunc("/victims/recent", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"victims": [
			{"victim": "Acme Corp", "group": "lockbit3", "discovered": "2026-08-20 11:30:00.000000", "country": "US"},
			{"victim": "Globex", "group": "quietgroup", "discovered": "2026-08-19 09:00:00.000000"}
		]}`))
	})
	mux.HandleFunc("/stats", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"stats": {"groups": 4, "victims": 200, "press": 7}, "last_update": "2026-08-21 00:00:00"}`))
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// run invokes the CLI the way main does, with env pointing at srv.
func run(t *testing.T, srv *httptest.Server, token string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	t.Setenv("RANSOMWATCH_API_TOKEN", token)
	if srv != nil {
		t.Setenv("RANSOMWATCH_API_BASE", srv.URL)
	}

	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf, models.NewBuildInfo("test", "", ""))
	return code, out.String(), errBuf.String()
}

func TestRunMissingTokenMakesNoRequests(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, _, stderr := run(t, srv, "", "groups")

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "no API token provided")
	assert.Contains(t, stderr, "export RANSOMWATCH_API_TOKEN=your_token")
	assert.Zero(t, hits.Load(), "missing token must not reach the network")
}

func TestRunNoCommand(t *testing.T) {
	code, _, stderr := run(t, nil, "tok")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "no command given")
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, stderr := run(t, nil, "tok", "destroy")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, `unknown command "destroy"`)
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := run(t, nil, "tok", "-h")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "groups")
}

func TestRunVersionWithoutToken(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "", "version")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "Build version: test")
	assert.Contains(t, stdout, "Build date: N/A")
	assert.Contains(t, stdout, "Build commit: N/A")
	assert.Zero(t, hits.Load())
}

func TestRunGroups(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "tok", "groups")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "Found 2 active groups")
	assert.Contains(t, stdout, "lockbit3")
	assert.Contains(t, stdout, "Total groups: 2 | Total victims: 123")
	assert.Equal(t, int64(1), hits.Load())
}

func TestRunGroupsJSONPassthrough(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "tok", "--json", "groups")

	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"groups": [
		{"group": "lockbit3", "altname": "lockbit", "victims": 120},
		{"group": "quietgroup", "victims": 3}
	]}`, stdout)
}

func TestRunRecentLimit(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "tok", "recent", "-l", "1")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "Acme Corp")
	assert.NotContains(t, stdout, "Globex")
}

func TestRunRecentLimitOutOfRange(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, _, stderr := run(t, srv, "tok", "recent", "-l", "1001")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "limit must be between 1 and 1000")
}

func TestRunInfo(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "tok", "info", "--group", "  LockBit3 ")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "lockbit3")
	assert.Contains(t, stdout, "Third major revision")
}

func TestRunInfoRequiresGroup(t *testing.T) {
	code, _, stderr := run(t, nil, "tok", "info")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "--group is required")
}

func TestRunInfoInvalidGroupNameSkipsNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, _, stderr := run(t, srv, "tok", "info", "--group", "<script>")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "group name must reduce to")
	assert.Zero(t, hits.Load())
}

func TestRunStats(t *testing.T) {
	var hits atomic.Int64
	srv := testAPI(t, &hits)

	code, stdout, _ := run(t, srv, "tok", "stats")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "Total Groups:     4")
	assert.Contains(t, stdout, "Total Victims:    200")
	assert.Contains(t, stdout, "Average victims per group: 50.0")
}

func TestRunUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	code, _, stderr := run(t, srv, "badtok", "groups")

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "API token rejected")
}

func TestRunInvalidTimeoutFlag(t *testing.T) {
	code, _, stderr := run(t, nil, "tok", "--timeout", "301", "groups")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "timeout")
}
