// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/utils"
	"github.com/MKhiriev/go-auth-panel/internal/validators"
	"github.com/MKhiriev/go-auth-panel/models"
)

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// login does not length-check its input: the bootstrap and legacy
// credentials may be shorter than the create-time minimums.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.services.AuthService.CurrentUser(r.Context())
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated, "no current user")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid change password request")
		return
	}

	fields := []string{validators.FieldCurrentPassword, validators.FieldNewPassword}
	if req.ConfirmPassword != "" {
		fields = append(fields, validators.FieldConfirmPassword)
	}
	if err := h.validator.Validate(ctx, req, fields...); err != nil {
		writeError(w, r, err, "invalid change password request")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err, "error changing password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ChangeUsernameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid change username request")
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid change username request")
		return
	}

	if err := h.services.AuthService.ChangeUsername(ctx, req.Username); err != nil {
		writeError(w, r, err, "error changing username")
		return
	}

	user, _ := h.services.AuthService.CurrentUser(ctx)
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}
