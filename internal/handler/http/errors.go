// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is returned for request bodies that are not valid
// JSON for the endpoint's request model.
var ErrInvalidRequestBody = errors.New("invalid request body")
