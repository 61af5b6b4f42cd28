// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-panel/internal/app"
	"github.com/MKhiriev/go-auth-panel/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError renders err for the operator. An unreachable store gets a
// generic message and the user-facing service errors get their panel
// message. Everything else, store failures included, is shown as it is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgRemoteStoreError
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return app.MsgNotLoggedIn
	case errors.Is(err, service.ErrWrongCurrentPassword):
		return app.MsgWrongCurrentPassword
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, service.ErrUsernameTaken):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, service.ErrSelfDeletionForbidden):
		return app.MsgCannotDeleteSelf
	}

	return err.Error()
}
