// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// PanelConfig is the configuration view used by the terminal panel. It
// carries everything except the HTTP listen settings.
type PanelConfig struct {
	App     App
	Storage Storage
	Adapter Adapter
}

// GetPanelConfig builds and validates a panel-specific config view from the
// merged structured configuration.
func GetPanelConfig() (*PanelConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(osArgs()).
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	panelCfg := &PanelConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return panelCfg, panelCfg.validate()
}

// UsesRESTStore reports whether users are stored behind the REST gateway.
func (cfg *PanelConfig) UsesRESTStore() bool {
	return cfg.Adapter.HTTPAddress != ""
}
