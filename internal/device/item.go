package device

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/store"
	"github.com/MKhiriev/go-cam-scan/models"
)

// remoteItem is a file on the device. Its info is guarded because metadata
// arrives on the queue goroutine while the UI reads it.
type remoteItem struct {
	session *Session

	mu   sync.RWMutex
	info models.ItemInfo
}

func newRemoteItem(s *Session, info models.ItemInfo) *remoteItem {
	return &remoteItem{session: s, info: info}
}

func (i *remoteItem) ID() string {
	// the id never changes after construction
	return i.info.ID
}

func (i *remoteItem) Name() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.info.Name
}

func (i *remoteItem) CreatedAt() (time.Time, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.info.CreatedAt == nil {
		return time.Time{}, false
	}
	return *i.info.CreatedAt, true
}

func (i *remoteItem) MetadataLoaded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.info.MetadataLoaded
}

func (i *remoteItem) IsKnownImageType() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.info.KnownImageType
}

// applyMetadata copies loaded metadata in. Partial responses are ignored so
// the loaded flag only ever goes from false to true.
func (i *remoteItem) applyMetadata(info models.ItemInfo) {
	if !info.MetadataLoaded {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.info.Name = info.Name
	i.info.Size = info.Size
	i.info.CreatedAt = info.CreatedAt
	i.info.KnownImageType = info.KnownImageType
	i.info.MetadataLoaded = true
}

func (i *remoteItem) LoadMetadata(ctx context.Context) error {
	if i.MetadataLoaded() {
		return nil
	}

	return i.session.queue.Do(ctx, func(ctx context.Context) error {
		// another caller may have loaded it while this command waited
		if i.MetadataLoaded() {
			return nil
		}

		info, err := i.session.adapter.LoadMetadata(ctx, i.ID())
		if err != nil {
			return fmt.Errorf("load metadata of %s: %w", i.ID(), err)
		}
		i.applyMetadata(info)

		return nil
	})
}

func (i *remoteItem) FetchThumbnail(ctx context.Context, preflight Preflight) ([]byte, error) {
	return i.session.fetchThumbnail(ctx, i, preflight)
}

func (s *Session) fetchThumbnail(ctx context.Context, item Item, preflight Preflight) ([]byte, error) {
	var data []byte

	err := s.queue.Do(ctx, func(ctx context.Context) error {
		if preflight != nil && !preflight(item) {
			return ErrPreflightRejected
		}

		if s.cache != nil {
			cached, err := s.cache.GetThumbnail(ctx, s.cacheKey, item.ID())
			if err == nil {
				data = cached
				return nil
			}
			if !errors.Is(err, store.ErrThumbnailNotFound) {
				s.logger.Warn().Err(err).Str("item_id", item.ID()).Msg("thumbnail cache read failed")
			}
		}

		fetched, err := s.adapter.FetchThumbnail(ctx, item.ID())
		if err != nil {
			return fmt.Errorf("fetch thumbnail of %s: %w", item.ID(), err)
		}
		data = fetched

		if s.cache != nil && len(fetched) > 0 {
			if err := s.cache.SaveThumbnail(ctx, s.cacheKey, item.ID(), fetched); err != nil {
				s.logger.Warn().Err(err).Str("item_id", item.ID()).Msg("thumbnail cache write failed")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
