// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-panel/internal/app"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by
// errors.Is wins. ErrWrongCurrentPassword precedes ErrInvalidCredentials,
// which it wraps. Remote and validation errors carry their own text.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidRequestBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNotAuthenticated, errorResponse{http.StatusUnauthorized, app.MsgNotLoggedIn}},
	{service.ErrWrongCurrentPassword, errorResponse{http.StatusUnauthorized, app.MsgWrongCurrentPassword}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrUsernameTaken, errorResponse{http.StatusConflict, app.MsgUsernameAlreadyExists}},
	{service.ErrSelfDeletionForbidden, errorResponse{http.StatusForbidden, app.MsgCannotDeleteSelf}},
}

var validationErrors = []error{
	validators.ErrUsernameTooShort,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordMismatch,
	validators.ErrEmptyCurrentPassword,
	validators.ErrEmptyUserID,
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	if errors.Is(err, service.ErrRemote) {
		return errorResponse{http.StatusBadGateway, err.Error()}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return errorResponse{http.StatusBadRequest, target.Error()}
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the mapped status with a plain-text body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg(msg)
	}

	http.Error(w, resp.message, resp.status)
}
