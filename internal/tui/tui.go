// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/validators"
	"github.com/MKhiriev/go-auth-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoAuthService = errors.New("auth service is not configured")

// TUI is the terminal front-end of the auth panel.
type TUI struct {
	auth      service.AuthService
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoAuthService
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		auth:      services.AuthService,
		validator: validators.NewCredentialsValidator(),
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the panel until the operator quits. A session persisted by a
// previous run opens the panel directly; otherwise the login page is shown.
// Ctrl+C is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.auth),
		pagePanel:    NewPanelModel(ctx, t.auth),
		pageCreate:   NewCreateUserForm(ctx, t.auth, t.validator),
		pagePassword: NewChangePasswordForm(ctx, t.auth, t.validator),
		pageUsername: NewChangeUsernameForm(ctx, t.auth, t.validator),
	}

	start := pageLogin
	if t.auth.IsAuthenticated(ctx) {
		start = pagePanel
		t.logger.Debug().Msg("restored session, opening panel")
	}

	return NewRootModel(pages, start, t.buildInfo)
}
