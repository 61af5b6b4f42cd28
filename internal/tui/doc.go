// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user management panel.
//
// Pages are Bubble Tea models switched by [RootModel]: the login form, the
// panel with the user list, and the forms that create a user or change the
// current user's password or username. Every page talks to
// [service.AuthService] through asynchronous commands so the UI never
// blocks on the credential store.
package tui
