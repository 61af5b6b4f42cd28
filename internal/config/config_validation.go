// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] used by the panel API server.
func (cfg *StructuredConfig) validate() error {
	if err := validateCommon(cfg.App, cfg.Storage, cfg.Adapter); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validate checks the [PanelConfig] used by the terminal panel.
func (cfg *PanelConfig) validate() error {
	return validateCommon(cfg.App, cfg.Storage, cfg.Adapter)
}

func validateCommon(app App, storage Storage, adapter Adapter) error {
	switch strings.ToLower(strings.TrimSpace(app.PasswordScheme)) {
	case "bcrypt", "legacy":
	default:
		return ErrInvalidAppConfigs
	}

	if app.BootstrapLogin == "" || app.BootstrapPassword == "" {
		return ErrInvalidAppConfigs
	}

	if storage.DB.DSN == "" && adapter.HTTPAddress == "" {
		return ErrInvalidStorageConfigs
	}

	if storage.Session.Path == "" || storage.Session.Key == "" {
		return ErrInvalidStorageConfigs
	}

	if adapter.HTTPAddress != "" && (adapter.APIKey == "" || adapter.RequestTimeout <= 0) {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
