// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of the auth panel.
//
// It exposes the operations of [service.AuthService] for the panel's single
// session: login and logout, the current user, password and username
// changes, and user administration. Request tracing, access logging and
// panic recovery are handled by middleware before requests reach the
// handlers; service errors are mapped to status codes in errors_mapper.go.
package http
