// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/models"
)

// memoryRepository is an in-memory store.UserRepository that enforces
// username uniqueness like the auth_users table does.
type memoryRepository struct {
	mu     sync.Mutex
	rows   map[string]models.User
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[string]models.User{}}
}

func (m *memoryRepository) match(u models.User, f models.UserFilter) bool {
	return (f.ID == "" || u.ID == f.ID) &&
		(f.Username == "" || u.Username == f.Username) &&
		(f.Password == "" || u.Password == f.Password)
}

func (m *memoryRepository) FindUsers(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0, len(m.rows))
	for _, u := range m.rows {
		if m.match(u, filter) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *memoryRepository) FindUser(ctx context.Context, filter models.UserFilter) (models.User, error) {
	users, _ := m.FindUsers(ctx, filter)
	switch len(users) {
	case 0:
		return models.User{}, store.ErrNoUserWasFound
	case 1:
		return users[0], nil
	default:
		return models.User{}, store.ErrMultipleUsersFound
	}
}

func (m *memoryRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.usernameTaken(user.Username, "") {
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	m.nextID++
	user.ID = fmt.Sprintf("id-%03d", m.nextID)
	user.CreatedAt = time.Date(2025, 1, 1, 0, 0, m.nextID, 0, time.UTC)
	user.UpdatedAt = user.CreatedAt
	m.rows[user.ID] = user
	return user, nil
}

func (m *memoryRepository) UpdateUser(_ context.Context, id string, update models.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.rows[id]
	if !ok {
		return store.ErrNoUserWasFound
	}
	if update.Username != nil {
		if m.usernameTaken(*update.Username, id) {
			return store.ErrUsernameAlreadyExists
		}
		u.Username = *update.Username
	}
	if update.Password != nil {
		u.Password = *update.Password
	}
	u.UpdatedAt = update.UpdatedAt
	m.rows[id] = u
	return nil
}

func (m *memoryRepository) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return store.ErrNoUserWasFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryRepository) usernameTaken(username, exceptID string) bool {
	for id, u := range m.rows {
		if u.Username == username && id != exceptID {
			return true
		}
	}
	return false
}

func (m *memoryRepository) snapshot() map[string]models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]models.User, len(m.rows))
	for k, v := range m.rows {
		out[k] = v
	}
	return out
}

func (m *memoryRepository) countByUsername(username string) int {
	users, _ := m.FindUsers(context.Background(), models.UserFilter{Username: username})
	return len(users)
}

// memorySlot is an in-memory store.SessionStore.
type memorySlot struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySlot() *memorySlot {
	return &memorySlot{values: map[string]string{}}
}

func (m *memorySlot) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrSlotNotFound
	}
	return v, nil
}

func (m *memorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
