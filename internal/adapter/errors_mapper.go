// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx gateway response into an error. Store
// conditions are reported with the store sentinels so callers can treat both
// repository implementations alike.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var apiErr APIError
	if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Code != "" {
		switch apiErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", store.ErrUsernameAlreadyExists, &apiErr)
		case codeSingularObject:
			return singularObjectError(&apiErr)
		}
		body = apiErr.Error()
	}

	switch resp.StatusCode() {
	case http.StatusNotAcceptable:
		return singularObjectError(&apiErr)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// singularObjectError tells "0 rows" apart from "several rows" for a
// single-object read.
func singularObjectError(apiErr *APIError) error {
	if strings.Contains(apiErr.Details, " 0 rows") {
		return store.ErrNoUserWasFound
	}
	return store.ErrMultipleUsersFound
}
