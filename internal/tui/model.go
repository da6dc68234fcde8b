// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ransomwatch/ransomwatch/internal/service"
	"github.com/ransomwatch/ransomwatch/models"
)

type page int

const (
	pageList page = iota
	pageDetail
)

// rootModel drives the browse session: a group list page and a detail page
// for the selected group.
type rootModel struct {
	svc *service.IntelService

	page   page
	list   list.Model
	loaded bool

	loadingDetail bool
	detail        models.GroupDetail
	detailErr     error

	// err aborts the session; set only when the initial load fails.
	err error

	width  int
	height int
}

func newRootModel(svc *service.IntelService) rootModel {
	return rootModel{svc: svc, page: pageList}
}

func (m rootModel) Init() tea.Cmd {
	return m.loadGroups
}

func (m rootModel) loadGroups() tea.Msg {
	report, err := m.svc.ActiveGroups(context.Background())
	return groupsLoaded{report: report, err: err}
}

func (m rootModel) loadDetail(name string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.svc.GroupInfo(context.Background(), name)
		return detailLoaded{detail: detail, err: err}
	}
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.loaded {
			h, v := appStyle.GetFrameSize()
			m.list.SetSize(msg.Width-h, msg.Height-v)
		}
		return m, nil

	case groupsLoaded:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.list = newGroupList(msg.report.Groups)
		m.loaded = true
		if m.width > 0 {
			h, v := appStyle.GetFrameSize()
			m.list.SetSize(m.width-h, m.height-v)
		}
		return m, nil

	case detailLoaded:
		m.loadingDetail = false
		m.detailErr = msg.err
		if msg.err == nil {
			m.detail = msg.detail
		}
		m.page = pageDetail
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.page == pageDetail {
			switch msg.String() {
			case "esc", "q", "backspace":
				m.page = pageList
				m.detailErr = nil
			}
			return m, nil
		}

		if !m.loaded {
			return m, nil
		}

		// While the list filter input is active, every key belongs to it.
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				if item, ok := m.list.SelectedItem().(groupItem); ok && !m.loadingDetail {
					m.loadingDetail = true
					return m, m.loadDetail(item.group.Name)
				}
				return m, nil
			}
		}
	}

	if !m.loaded || m.page != pageList {
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m rootModel) View() string {
	if m.err != nil {
		return appStyle.Render(errorStyle.Render("error: "+m.err.Error()) + "\n\n" +
			helpStyle.Render("press any key to quit"))
	}
	if !m.loaded {
		return appStyle.Render("Loading groups...")
	}
	if m.page == pageDetail {
		return appStyle.Render(m.detailView())
	}
	if m.loadingDetail {
		return appStyle.Render(m.list.View() + "\n" + helpStyle.Render("fetching group details..."))
	}
	return appStyle.Render(m.list.View())
}
