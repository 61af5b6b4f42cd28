// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/utils"
	"github.com/MKhiriev/go-auth-panel/internal/validators"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "invalid create user request")
		return
	}

	if err := h.validator.Validate(ctx, creds); err != nil {
		writeError(w, r, err, "invalid create user request")
		return
	}

	user, err := h.services.AuthService.CreateUser(ctx, creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err, "error creating user")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user created")
	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "id")

	if err := h.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		writeError(w, r, err, "invalid delete user request")
		return
	}

	if err := h.services.AuthService.DeleteUser(ctx, userID); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
