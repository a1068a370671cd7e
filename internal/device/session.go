// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/store"
	"github.com/MKhiriev/go-cam-scan/internal/workers"
	"github.com/MKhiriev/go-cam-scan/models"
)

// Session is an open connection to one camera. It implements [Camera].
//
// All remote calls made by the session and by the items it hands out run on
// a single [workers.CommandQueue], so the device never sees more than one
// outstanding command.
type Session struct {
	adapter adapter.DeviceAdapter
	queue   *workers.CommandQueue
	cache   store.ThumbnailRepository
	logger  *logger.Logger

	info     models.DeviceInfo
	cacheKey string

	mu         sync.RWMutex
	categories models.CommandCategories
	storages   []StorageDevice
}

// Open connects to the device behind adp: it starts the command queue and
// reads the device identity, its command categories and its storages. cache
// may be nil. The session must be closed with Close.
func Open(ctx context.Context, adp adapter.DeviceAdapter, cache store.ThumbnailRepository, log *logger.Logger) (*Session, error) {
	queue := workers.NewCommandQueue(log)
	// the queue serves the session, not the call that opened it
	queue.Run(context.WithoutCancel(ctx))

	s := &Session{
		adapter: adp,
		queue:   queue,
		cache:   cache,
		logger:  log,
	}

	if err := s.handshake(ctx); err != nil {
		queue.Stop()
		return nil, err
	}

	s.logger.Info().
		Str("device", s.info.DisplayName()).
		Str("serial", s.info.SerialNumber).
		Strs("categories", s.categories.Names()).
		Int("storages", len(s.storages)).
		Msg("device session opened")

	return s, nil
}

func (s *Session) handshake(ctx context.Context) error {
	return s.queue.Do(ctx, func(ctx context.Context) error {
		info, err := s.adapter.DeviceInfo(ctx)
		if err != nil {
			return fmt.Errorf("read device info: %w", err)
		}

		s.info = info
		s.cacheKey = info.SerialNumber
		if s.cacheKey == "" {
			s.cacheKey = s.adapter.Address()
		}

		return s.readState(ctx)
	})
}

// readState fetches categories and storages. It runs on the queue.
func (s *Session) readState(ctx context.Context) error {
	categories, err := s.adapter.CommandCategories(ctx)
	if err != nil {
		return fmt.Errorf("read command categories: %w", err)
	}

	storageInfos, err := s.adapter.StorageDevices(ctx)
	if err != nil {
		return fmt.Errorf("read storage devices: %w", err)
	}

	storages := make([]StorageDevice, 0, len(storageInfos))
	for _, si := range storageInfos {
		storages = append(storages, newRemoteStorage(s, si))
	}

	s.mu.Lock()
	s.categories = categories
	s.storages = storages
	s.mu.Unlock()

	return nil
}

func (s *Session) Info() models.DeviceInfo {
	return s.info
}

// CacheKey identifies the device in the thumbnail cache.
func (s *Session) CacheKey() string {
	return s.cacheKey
}

func (s *Session) Address() string {
	return s.adapter.Address()
}

func (s *Session) CommandCategories() models.CommandCategories {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

func (s *Session) StorageDevices() []StorageDevice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StorageDevice(nil), s.storages...)
}

// RefreshCategories re-reads the command categories from the device.
func (s *Session) RefreshCategories(ctx context.Context) error {
	return s.queue.Do(ctx, func(ctx context.Context) error {
		categories, err := s.adapter.CommandCategories(ctx)
		if err != nil {
			return fmt.Errorf("read command categories: %w", err)
		}

		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()

		return nil
	})
}

// Reload replaces the storages with fresh, unloaded handles so a new scan
// lists the device again. Handles obtained earlier keep their loaded state.
func (s *Session) Reload(ctx context.Context) error {
	return s.queue.Do(ctx, s.readState)
}

// Close stops the command queue. Calls still waiting fail with
// [workers.ErrQueueStopped]; a command already running completes first.
func (s *Session) Close() {
	s.queue.Stop()
	s.logger.Info().Str("device", s.info.DisplayName()).Msg("device session closed")
}
