// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements [store.UserRepository] on top of a hosted
// PostgREST gateway (the REST interface of database-as-a-service
// providers) using resty.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/internal/utils"
	"github.com/MKhiriev/go-auth-panel/models"
)

const (
	restPrefix = "/rest/v1/"

	mediaTypeObject      = "application/vnd.pgrst.object+json"
	preferRepresentation = "return=representation"
)

type idGenerator interface {
	Generate() string
}

type restUserRepository struct {
	client *utils.HTTPClient
	table  string
	ids    idGenerator

	logger *logger.Logger
}

// NewRESTUserRepository constructs a REST implementation of
// [store.UserRepository]. It normalises and validates the base URL from
// cfg.HTTPAddress and authenticates every request with cfg.APIKey.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewRESTUserRepository(cfg config.Adapter, logger *logger.Logger) (store.UserRepository, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating REST user repository")

	return &restUserRepository{
		client: utils.NewHTTPClient(baseURL, cfg.APIKey, cfg.RequestTimeout),
		table:  restPrefix + models.User{}.TableName(),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FindUsers implements [store.UserRepository]. It issues
// GET /rest/v1/auth_users?select=*&<filters>&order=username.asc.
func (r *restUserRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	var users []models.User

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(filterQuery(filter)).
		SetQueryParam("order", "username.asc").
		SetResult(&users).
		Get(r.table)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.FindUsers").Msg("request failed")
		return nil, fmt.Errorf("find users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}

// FindUser implements [store.UserRepository]. The singular object media type
// makes the gateway reject zero or several matches with PGRST116.
func (r *restUserRepository) FindUser(ctx context.Context, filter models.UserFilter) (models.User, error) {
	var user models.User

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", mediaTypeObject).
		SetQueryParamsFromValues(filterQuery(filter)).
		SetResult(&user).
		Get(r.table)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.FindUser").Msg("request failed")
		return models.User{}, fmt.Errorf("find user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

type createUserBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser implements [store.UserRepository]. It POSTs the row and asks
// the gateway to return the stored representation.
func (r *restUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = r.ids.Generate()
	}

	var created models.User
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", mediaTypeObject).
		SetHeader("Prefer", preferRepresentation).
		SetBody(createUserBody{ID: user.ID, Username: user.Username, Password: user.Password}).
		SetResult(&created).
		Post(r.table)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.CreateUser").Msg("request failed")
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// UpdateUser implements [store.UserRepository] with PATCH ?id=eq.<id>.
func (r *restUserRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) error {
	updatedAt := update.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	body := map[string]any{"updated_at": updatedAt}
	if update.Username != nil {
		body["username"] = *update.Username
	}
	if update.Password != nil {
		body["password"] = *update.Password
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", preferRepresentation).
		SetQueryParam("id", "eq."+id).
		SetBody(body).
		Patch(r.table)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.UpdateUser").Msg("request failed")
		return fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return expectRows(resp.Body())
}

// DeleteUser implements [store.UserRepository] with DELETE ?id=eq.<id>.
func (r *restUserRepository) DeleteUser(ctx context.Context, id string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParam("id", "eq."+id).
		Delete(r.table)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.DeleteUser").Msg("request failed")
		return fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return expectRows(resp.Body())
}

func filterQuery(filter models.UserFilter) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	if filter.ID != "" {
		q.Set("id", "eq."+filter.ID)
	}
	if filter.Username != "" {
		q.Set("username", "eq."+filter.Username)
	}
	if filter.Password != "" {
		q.Set("password", "eq."+filter.Password)
	}
	return q
}

// expectRows reports [store.ErrNoUserWasFound] when a representation body
// lists no affected rows.
func expectRows(body []byte) error {
	if len(body) == 0 {
		return nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(rows) == 0 {
		return store.ErrNoUserWasFound
	}
	return nil
}
