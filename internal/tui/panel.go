// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-panel/internal/app"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

// PanelModel is the main page: the current user and every row of the store.
type PanelModel struct {
	ctx  context.Context
	auth service.AuthService

	current models.User
	users   []models.User
	idx     int

	loading bool
	spinner spinner.Model
	status  string
	lastErr string

	confirm *confirmModel
	overlay *errorOverlayModel
}

func NewPanelModel(ctx context.Context, auth service.AuthService) *PanelModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &PanelModel{ctx: ctx, auth: auth, spinner: s}
}

// Init reloads the list every time the page is opened.
func (m *PanelModel) Init() tea.Cmd {
	m.confirm = nil
	m.overlay = nil
	m.status = ""
	m.lastErr = ""
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *PanelModel) selected() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNotAuthenticated) {
				return m, navigate(pageLogin, StatusNotice{Text: humanizeError(msg.err)})
			}
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.current = msg.current
		m.users = msg.users
		if m.idx >= len(m.users) {
			m.idx = max(len(m.users)-1, 0)
		}
		return m, nil

	case userDeletedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = fmt.Sprintf("%s: %s", app.MsgUserDeleted, msg.username)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case copiedMsg:
		if msg.err != nil {
			m.lastErr = humanizeError(msg.err)
			return m, nil
		}
		m.lastErr = ""
		m.status = app.MsgIDCopied + ": " + msg.id
		return m, nil

	case loggedOutMsg:
		return m, navigate(pageLogin, StatusNotice{Text: app.MsgLoggedOut})

	case StatusNotice:
		m.status = msg.Text
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PanelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			target, ok := m.selected()
			m.confirm = nil
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(target)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.newUser):
		return m, navigate(pageCreate, nil)
	case key.Matches(msg, keys.password):
		return m, navigate(pagePassword, nil)
	case key.Matches(msg, keys.username):
		return m, navigate(pageUsername, nil)
	case key.Matches(msg, keys.delete):
		target, ok := m.selected()
		if !ok {
			return m, nil
		}
		if target.ID == m.current.ID {
			m.overlay = &errorOverlayModel{message: app.MsgCannotDeleteSelf}
			return m, nil
		}
		m.confirm = &confirmModel{username: target.Username}
	case key.Matches(msg, keys.copy):
		if target, ok := m.selected(); ok {
			return m, cmdCopy(target.ID)
		}
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *PanelModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder

	header := "User: " + m.current.Username
	if !m.current.CreatedAt.IsZero() {
		header += "  (created " + formatDate(m.current.CreatedAt) + ")"
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString("  Username             │ Created          │ Updated\n")
	b.WriteString("  ─────────────────────┼──────────────────┼──────────────────\n")

	if len(m.users) == 0 {
		if m.loading {
			b.WriteString("  Loading...\n")
		} else {
			b.WriteString("  No users\n")
		}
	}

	for i, u := range m.users {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		name := fitText(u.Username, 20)
		if u.ID == m.current.ID {
			name = fitText(u.Username, 18) + " *"
		}
		line := fmt.Sprintf("%s%-20s │ %-16s │ %s", cursor, name, formatDate(u.CreatedAt), formatDate(u.UpdatedAt))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.lastErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.lastErr))
		b.WriteString("\n")
	}

	hotKeys := "n new │ d delete │ c copy id │ p password │ u username │ r refresh │ l logout │ v version │ q quit"
	return renderPage("USERS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *PanelModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		current, ok := auth.CurrentUser(ctx)
		if !ok {
			return usersLoadedMsg{err: service.ErrNotAuthenticated}
		}
		users, err := auth.GetAllUsers(ctx)
		return usersLoadedMsg{current: current, users: users, err: err}
	}
}

func (m *PanelModel) cmdDelete(target models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.DeleteUser(ctx, target.ID)
		return userDeletedMsg{username: target.Username, err: err}
	}
}

func (m *PanelModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return loggedOutMsg{}
	}
}

func cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(id); err != nil {
			return copiedMsg{id: id, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{id: id}
	}
}
