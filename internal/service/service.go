// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package service holds the logic between the API adapter and the
// renderers: ordering, truncation, input normalization, and derived
// metrics. It performs no I/O of its own.
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/ransomwatch/ransomwatch/internal/adapter"
	"github.com/ransomwatch/ransomwatch/internal/logger"
	"github.com/ransomwatch/ransomwatch/models"
)

// Bounds for the recent-victims limit.
const (
	MinLimit     = 1
	MaxLimit     = 1000
	DefaultLimit = 10
)

// IntelService answers the questions the CLI commands ask.
type IntelService struct {
	api adapter.API
	log *logger.Logger
}

// NewIntelService wires the service to its transport.
func NewIntelService(api adapter.API, log *logger.Logger) *IntelService {
	return &IntelService{api: api, log: log}
}

// ActiveGroups fetches the group list and returns it sorted by victim count
// descending, with totals precomputed for the report footer.
func (s *IntelService) ActiveGroups(ctx context.Context) (models.GroupsReport, error) {
	resp, err := s.api.Groups(ctx)
	if err != nil {
		return models.GroupsReport{}, fmt.Errorf("fetch groups: %w", err)
	}

	groups := make([]models.Group, len(resp.Groups))
	copy(groups, resp.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Victims > groups[j].Victims
	})

	report := models.GroupsReport{
		Groups:      groups,
		TotalGroups: len(groups),
		Raw:         resp.Raw,
	}
	for _, g := range groups {
		report.TotalVictims += g.Victims
	}

	s.log.Debug().Int("groups", report.TotalGroups).Msg("groups fetched")
	return report, nil
}

// RecentVictims fetches the recent-victims window and truncates it to
// limit. limit must be within [MinLimit, MaxLimit].
func (s *IntelService) RecentVictims(ctx context.Context, limit int) (models.VictimsReport, error) {
	if limit < MinLimit || limit > MaxLimit {
		return models.VictimsReport{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidLimit, limit, MinLimit, MaxLimit)
	}

	resp, err := s.api.RecentVictims(ctx)
	if err != nil {
		return models.VictimsReport{}, fmt.Errorf("fetch recent victims: %w", err)
	}

	victims := resp.Victims
	if len(victims) > limit {
		victims = victims[:limit]
	}

	s.log.Debug().Int("total", len(resp.Victims)).Int("shown", len(victims)).Msg("victims fetched")
	return models.VictimsReport{Victims: victims, Total: len(resp.Victims)}, nil
}

// GroupInfo normalizes the user-supplied name and fetches the detailed
// record. Returns models.ErrInvalidGroupName (wrapped) without touching the
// network when the name cannot be normalized.
func (s *IntelService) GroupInfo(ctx context.Context, name string) (models.GroupDetail, error) {
	normalized, err := models.NormalizeGroupName(name)
	if err != nil {
		return models.GroupDetail{}, fmt.Errorf("group name %q: %w", name, err)
	}
	if normalized != name {
		s.log.Debug().Str("normalized", normalized).Msg("group name normalized")
	}

	detail, err := s.api.GroupInfo(ctx, normalized)
	if err != nil {
		return models.GroupDetail{}, fmt.Errorf("fetch group %s: %w", normalized, err)
	}
	if detail.Name == "" {
		detail.Name = normalized
	}

	return detail, nil
}

// Overview fetches the service-wide counters and derives the average
// victims-per-group metric.
func (s *IntelService) Overview(ctx context.Context) (models.StatsReport, error) {
	resp, err := s.api.Stats(ctx)
	if err != nil {
		return models.StatsReport{}, fmt.Errorf("fetch stats: %w", err)
	}

	report := models.StatsReport{
		Stats:      resp.Stats,
		LastUpdate: resp.LastUpdate,
		Raw:        resp.Raw,
	}
	if resp.Stats.Groups > 0 && resp.Stats.Victims > 0 {
		report.AvgVictims = float64(resp.Stats.Victims) / float64(resp.Stats.Groups)
	}

	return report, nil
}
