// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/ransomwatch/ransomwatch/internal/logger"
	"github.com/ransomwatch/ransomwatch/models"
)

const (
	retryCount       = 3
	retryWaitTime    = 1 * time.Second
	retryMaxWaitTime = 8 * time.Second

	// maxErrorBody caps how much of an error response is echoed to the
	// user; the cut lands on a rune boundary.
	maxErrorBody = 200
)

// HTTPClientConfig configures [NewHTTPAPIAdapter].
type HTTPClientConfig struct {
	// BaseURL is the API root, e.g. "https://api-pro.ransomware.live".
	BaseURL string
	// Token is sent as the X-API-KEY header on every request.
	Token string
	// Timeout bounds each individual request attempt.
	Timeout time.Duration
	// UserAgent identifies the client; defaults to "ransomwatch".
	UserAgent string
}

type httpAPIAdapter struct {
	client *resty.Client
	gate   Gate
	log    *logger.Logger
}

// NewHTTPAPIAdapter builds the resty-backed [API] implementation.
//
// The client retries GET requests up to three times with backoff on
// 500/502/503/504; every other failure surfaces immediately. gate is
// consulted before each request, including retries resty issues itself.
func NewHTTPAPIAdapter(cfg HTTPClientConfig, gate Gate, log *logger.Logger) API {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ransomwatch"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("X-API-KEY", strings.TrimSpace(cfg.Token)).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil || r == nil {
				return false
			}
			switch r.StatusCode() {
			case http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				return true
			}
			return false
		})

	a := &httpAPIAdapter{client: cli, gate: gate, log: log}

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		waited, err := a.gate.Wait(req.Context())
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
		if waited > 10*time.Millisecond {
			stats := a.gate.Stats()
			a.log.Debug().
				Dur("waited", waited).
				Int("requests_last_minute", stats.RequestsLastMinute).
				Int("requests_last_second", stats.RequestsLastSecond).
				Msg("rate limited before request")
		}
		return nil
	})

	return a
}

func (a *httpAPIAdapter) Groups(ctx context.Context) (models.GroupsResponse, error) {
	body, err := a.get(ctx, "/groups")
	if err != nil {
		return models.GroupsResponse{}, err
	}

	var out models.GroupsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.GroupsResponse{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	out.Raw = body
	return out, nil
}

func (a *httpAPIAdapter) GroupInfo(ctx context.Context, name string) (models.GroupDetail, error) {
	body, err := a.get(ctx, "/groups/"+url.PathEscape(name))
	if err != nil {
		return models.GroupDetail{}, err
	}

	var out models.GroupDetail
	if err := json.Unmarshal(body, &out); err != nil {
		return models.GroupDetail{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	out.Raw = body
	return out, nil
}

func (a *httpAPIAdapter) RecentVictims(ctx context.Context) (models.VictimsResponse, error) {
	body, err := a.get(ctx, "/victims/recent")
	if err != nil {
		return models.VictimsResponse{}, err
	}

	var out models.VictimsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.VictimsResponse{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	out.Raw = body
	return out, nil
}

func (a *httpAPIAdapter) Stats(ctx context.Context) (models.StatsResponse, error) {
	body, err := a.get(ctx, "/stats")
	if err != nil {
		return models.StatsResponse{}, err
	}

	var out models.StatsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	out.Raw = body
	return out, nil
}

// get performs one rate-limited GET and returns the response body after
// status mapping. The endpoint must already be escaped.
func (a *httpAPIAdapter) get(ctx context.Context, endpoint string) ([]byte, error) {
	a.log.Debug().Str("endpoint", endpoint).Msg("api request")

	resp, err := a.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	a.log.Debug().Int("status", resp.StatusCode()).Int("bytes", len(resp.Body())).Msg("api response")
	return resp.Body(), nil
}

// classifyTransportError folds the many shapes of a timeout into
// [ErrTimeout] and redacts anything else, since transport errors can echo
// request URLs.
func classifyTransportError(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, endpoint)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, endpoint)
	}
	return fmt.Errorf("request %s: %s", endpoint, logger.Redact(err.Error()))
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (http %d)", ErrUnauthorized, code)
	case http.StatusNotFound:
		return fmt.Errorf("%w (http %d)", ErrNotFound, code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (http %d)", ErrRateLimited, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return fmt.Errorf("http %d: %s", code, logger.Redact(body))
}
