// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/tui"
)

var errNoUI = errors.New("ui is not configured")

// App runs the terminal panel until the operator quits or the process is
// signalled.
type App struct {
	ui      UI
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp builds an [App]. closers are closed in order once the UI returns.
func NewApp(ui UI, log *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{ui: ui, closers: closers, logger: log}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(parent context.Context) (err error) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		for _, c := range a.closers {
			if closeErr := c.Close(); closeErr != nil {
				a.logger.Err(closeErr).Msg("error closing resource")
				err = errors.Join(err, closeErr)
			}
		}
	}()

	a.logger.Info().Msg("panel started")

	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("panel closed by user")
			return nil
		}
		return fmt.Errorf("panel error: %w", err)
	}

	a.logger.Info().Msg("panel stopped")
	return nil
}
