// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-panel/internal/mock"
	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const key = "currentUser"

// memorySlot is an in-memory store.SessionStore.
type memorySlot struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySlot() *memorySlot {
	return &memorySlot{values: map[string]string{}}
}

func (m *memorySlot) Get(_ context.Context, k string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[k]
	if !ok {
		return "", store.ErrSlotNotFound
	}
	return v, nil
}

func (m *memorySlot) Set(_ context.Context, k, v string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[k] = v
	return nil
}

func (m *memorySlot) Delete(_ context.Context, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, k)
	return nil
}

var alice = models.User{
	ID:        "id-alice",
	Username:  "alice",
	Password:  "enc",
	CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
}

func TestLoad_Empty(t *testing.T) {
	s := New(newMemorySlot(), key)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSaveLoadClear(t *testing.T) {
	slot := newMemorySlot()
	s := New(slot, key)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, alice))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	raw, err := slot.Get(ctx, key)
	require.NoError(t, err)
	var persisted models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, alice, persisted)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = slot.Get(ctx, key)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)
}

// TestLoad_RestoresFromSlot verifies that a fresh session (a restarted
// panel) picks up the user persisted by an earlier one.
func TestLoad_RestoresFromSlot(t *testing.T) {
	slot := newMemorySlot()
	ctx := context.Background()

	require.NoError(t, New(slot, key).Save(ctx, alice))

	restarted := New(slot, key)
	got, err := restarted.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	// cached: later slot changes are not observed
	require.NoError(t, slot.Delete(ctx, key))
	got, err = restarted.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{not json"},
		{name: "wrong shape", raw: `["alice"]`},
		{name: "no id", raw: `{"username":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := newMemorySlot()
			require.NoError(t, slot.Set(context.Background(), key, tt.raw))

			_, err := New(slot, key).Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformedSession)
		})
	}
}

func TestSessions_AreIndependent(t *testing.T) {
	ctx := context.Background()
	first := New(newMemorySlot(), key)
	second := New(newMemorySlot(), key)

	require.NoError(t, first.Save(ctx, alice))

	_, err := second.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSlotErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	slot := mock.NewMockSessionStore(ctrl)
	s := New(slot, key)
	ctx := context.Background()
	boom := errors.New("disk full")

	slot.EXPECT().Get(ctx, key).Return("", boom)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoSession)

	// the user stays current in memory even when persisting fails
	slot.EXPECT().Set(ctx, key, gomock.Any()).Return(boom)
	assert.ErrorIs(t, s.Save(ctx, alice), boom)
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	slot.EXPECT().Delete(ctx, key).Return(boom)
	assert.ErrorIs(t, s.Clear(ctx), boom)
	slot.EXPECT().Get(ctx, key).Return("", store.ErrSlotNotFound)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestConcurrentAccess(t *testing.T) {
	s := New(newMemorySlot(), key)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(ctx, alice)
			_, _ = s.Load(ctx)
		}()
	}
	wg.Wait()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}
