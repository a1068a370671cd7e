package device

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/models"
)

type remoteFolder struct {
	*remoteItem

	// catalog is the owning storage's progress; nil when not reported.
	catalog *progress.Progress

	childMu  sync.RWMutex
	children []Item
	loaded   bool
}

func newRemoteFolder(s *Session, info models.ItemInfo, catalog *progress.Progress) *remoteFolder {
	return &remoteFolder{
		remoteItem: newRemoteItem(s, info),
		catalog:    catalog,
	}
}

func (f *remoteFolder) Children() []Item {
	f.childMu.RLock()
	defer f.childMu.RUnlock()
	if !f.loaded {
		return nil
	}
	// loaded and empty is an empty slice, never nil
	out := make([]Item, len(f.children))
	copy(out, f.children)
	return out
}

func (f *remoteFolder) isLoaded() bool {
	f.childMu.RLock()
	defer f.childMu.RUnlock()
	return f.loaded
}

func (f *remoteFolder) LoadChildren(ctx context.Context) error {
	if f.isLoaded() {
		return nil
	}

	return f.session.queue.Do(ctx, func(ctx context.Context) error {
		if f.isLoaded() {
			return nil
		}

		infos, err := f.session.adapter.ListChildren(ctx, f.ID())
		if err != nil {
			return fmt.Errorf("list children of %s: %w", f.ID(), err)
		}

		children := make([]Item, 0, len(infos))
		for _, info := range infos {
			if info.IsFolder {
				children = append(children, newRemoteFolder(f.session, info, f.catalog))
				continue
			}
			children = append(children, newRemoteItem(f.session, info))
		}

		f.childMu.Lock()
		f.children = children
		f.loaded = true
		f.childMu.Unlock()

		if f.catalog != nil {
			f.catalog.Complete(1)
		}

		return nil
	})
}
