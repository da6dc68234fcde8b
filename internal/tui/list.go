// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ransomwatch/ransomwatch/models"
)

// groupItem adapts a models.Group to the bubbles list component.
type groupItem struct {
	group models.Group
}

func (i groupItem) Title() string {
	return fmt.Sprintf("%s %s", indicator(i.group.Victims), i.group.Name)
}

func (i groupItem) Description() string {
	desc := fmt.Sprintf("%d victims", i.group.Victims)
	if i.group.AltName != "" && i.group.AltName != i.group.Name {
		desc += " · aka " + i.group.AltName
	}
	return desc
}

func (i groupItem) FilterValue() string { return i.group.Name + " " + i.group.AltName }

func newGroupList(groups []models.Group) list.Model {
	items := make([]list.Item, len(groups))
	for idx, g := range groups {
		items[idx] = groupItem{group: g}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Ransomware groups"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	return l
}

func indicator(victims int) string {
	switch {
	case victims > 100:
		return "🔴"
	case victims > 50:
		return "🟡"
	case victims > 10:
		return "🟢"
	default:
		return "⚪"
	}
}
