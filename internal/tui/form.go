// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-panel/internal/app"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/validators"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label  string
	secret bool
}

// FormModel is a vertical list of text inputs with a single submit action.
// It is shared by the create user, change password and change username pages.
//
// submit receives the trimmed input values in field order. It runs inside a
// tea.Cmd and returns the status text shown on the panel after success.
type FormModel struct {
	ctx context.Context

	title  string
	fields []formField
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string

	submit func(ctx context.Context, values []string) (string, error)
}

func newFormModel(ctx context.Context, title string, fields []formField, submit func(context.Context, []string) (string, error)) *FormModel {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.CharLimit = 256
		in.Width = 40
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}

	return &FormModel{
		ctx:    ctx,
		title:  title,
		fields: fields,
		inputs: inputs,
		submit: submit,
	}
}

// Init clears the inputs every time the page is opened.
func (m *FormModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pagePanel, StatusNotice{Text: msg.notice})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.submitting {
				return m, nil
			}
			return m, navigate(pagePanel, nil)
		case key.Matches(msg, keys.tab):
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.move(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus < len(m.inputs)-1 {
				m.move(1)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(m.values())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) View() string {
	var b strings.Builder

	width := 0
	for _, f := range m.fields {
		if n := len([]rune(f.label)); n > width {
			width = n
		}
	}

	for i, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, f.label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: back")
}

func (m *FormModel) values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		if m.fields[i].secret {
			values[i] = in.Value()
			continue
		}
		values[i] = strings.TrimSpace(in.Value())
	}
	return values
}

func (m *FormModel) move(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FormModel) cmdSubmit(values []string) tea.Cmd {
	ctx := m.ctx
	submit := m.submit

	return func() tea.Msg {
		notice, err := submit(ctx, values)
		return formSubmittedMsg{notice: notice, err: err}
	}
}

// NewCreateUserForm builds the page that adds a user.
func NewCreateUserForm(ctx context.Context, auth service.AuthService, validator validators.Validator) *FormModel {
	fields := []formField{{label: "Username"}, {label: "Password", secret: true}}

	return newFormModel(ctx, "NEW USER", fields, func(ctx context.Context, values []string) (string, error) {
		creds := models.Credentials{Username: values[0], Password: values[1]}
		if err := validator.Validate(ctx, creds); err != nil {
			return "", err
		}
		if _, err := auth.CreateUser(ctx, creds.Username, creds.Password); err != nil {
			return "", err
		}
		return app.MsgUserCreated, nil
	})
}

// NewChangePasswordForm builds the page that changes the current user's password.
func NewChangePasswordForm(ctx context.Context, auth service.AuthService, validator validators.Validator) *FormModel {
	fields := []formField{
		{label: "Current password", secret: true},
		{label: "New password", secret: true},
		{label: "Confirm", secret: true},
	}

	return newFormModel(ctx, "CHANGE PASSWORD", fields, func(ctx context.Context, values []string) (string, error) {
		req := models.ChangePasswordRequest{
			CurrentPassword: values[0],
			NewPassword:     values[1],
			ConfirmPassword: values[2],
		}
		if err := validator.Validate(ctx, req); err != nil {
			return "", err
		}
		if err := auth.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
			return "", err
		}
		return app.MsgPasswordChanged, nil
	})
}

// NewChangeUsernameForm builds the page that renames the current user.
func NewChangeUsernameForm(ctx context.Context, auth service.AuthService, validator validators.Validator) *FormModel {
	fields := []formField{{label: "New username"}}

	return newFormModel(ctx, "CHANGE USERNAME", fields, func(ctx context.Context, values []string) (string, error) {
		req := models.ChangeUsernameRequest{Username: values[0]}
		if err := validator.Validate(ctx, req); err != nil {
			return "", err
		}
		if err := auth.ChangeUsername(ctx, req.Username); err != nil {
			return "", err
		}
		return app.MsgUsernameChanged, nil
	})
}
