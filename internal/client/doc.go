// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive panel application runtime.
//
// It wires the terminal UI to the process lifecycle: OS signals cancel the
// UI, and the storages are released when it exits.
package client
