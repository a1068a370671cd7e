package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/models"
)

// callLog records folder listings in order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(id string) {
	l.mu.Lock()
	l.calls = append(l.calls, id)
	l.mu.Unlock()
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeItem struct {
	id       string
	loaded   bool
	imageish bool
}

func (f *fakeItem) ID() string                   { return f.id }
func (f *fakeItem) Name() string                 { return f.id }
func (f *fakeItem) CreatedAt() (time.Time, bool) { return time.Time{}, false }
func (f *fakeItem) MetadataLoaded() bool         { return f.loaded }
func (f *fakeItem) IsKnownImageType() bool       { return f.imageish }
func (f *fakeItem) LoadMetadata(context.Context) error {
	return nil
}
func (f *fakeItem) FetchThumbnail(context.Context, device.Preflight) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func image(id string) *fakeItem    { return &fakeItem{id: id, loaded: true, imageish: true} }
func document(id string) *fakeItem { return &fakeItem{id: id, loaded: true} }
func unloaded(id string) *fakeItem { return &fakeItem{id: id} }

type fakeFolder struct {
	fakeItem
	log      *callLog
	pending  []device.Item
	children []device.Item
	loadErr  error
	catalog  *progress.Progress
}

func dir(log *callLog, id string, children ...device.Item) *fakeFolder {
	return &fakeFolder{fakeItem: fakeItem{id: id, loaded: true}, log: log, pending: children}
}

func (f *fakeFolder) Children() []device.Item { return f.children }

func (f *fakeFolder) LoadChildren(ctx context.Context) error {
	if f.children != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.log.add(f.id)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.children = append([]device.Item{}, f.pending...)
	if f.catalog != nil {
		f.catalog.Complete(1)
	}
	return nil
}

type fakeStorage struct {
	id      string
	root    device.Folder
	catalog *progress.Progress
}

func (s *fakeStorage) ID() string                          { return s.id }
func (s *fakeStorage) Description() string                 { return s.id }
func (s *fakeStorage) RootFolder() device.Folder           { return s.root }
func (s *fakeStorage) CatalogProgress() *progress.Progress { return s.catalog }

type fakeCamera struct {
	categories models.CommandCategories
	storages   []device.StorageDevice
}

func (c *fakeCamera) Info() models.DeviceInfo                     { return models.DeviceInfo{} }
func (c *fakeCamera) CommandCategories() models.CommandCategories { return c.categories }
func (c *fakeCamera) StorageDevices() []device.StorageDevice      { return c.storages }

func cameraWith(storages ...device.StorageDevice) *fakeCamera {
	return &fakeCamera{
		categories: models.CommandCategories(0).With(models.FilesystemAccess),
		storages:   storages,
	}
}

func ids(items []device.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}
