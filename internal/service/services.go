// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/crypto"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/session"
	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services of one panel: the session is mirrored
// into storages.SessionStore under the configured key.
func NewServices(storages *store.Storages, cfg config.App, sessionCfg config.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	encoder, err := crypto.NewPasswordEncoder(cfg.PasswordScheme, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password encoder: %w", err)
	}

	sess := session.New(storages.SessionStore, sessionCfg.Key)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, sess, encoder, cfg, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
