// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDotEnvFile = ".env"

	// DefaultSessionKey is the slot name the current user is stored under.
	DefaultSessionKey = "currentUser"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordScheme:    "bcrypt",
			BootstrapLogin:    "admin",
			BootstrapPassword: "admin",
			LogPath:           "panel.log",
		},
		Storage: Storage{
			Session: Session{
				Path: "session.db",
				Key:  DefaultSessionKey,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}
