package device

import (
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/models"
)

type remoteStorage struct {
	info    models.StorageInfo
	root    *remoteFolder
	catalog *progress.Progress
}

func newRemoteStorage(s *Session, info models.StorageInfo) *remoteStorage {
	storage := &remoteStorage{info: info}

	if info.Catalog != nil {
		storage.catalog = progress.New(info.Catalog.FolderCount)
	}

	if info.RootFolderID != "" {
		storage.root = newRemoteFolder(s, models.ItemInfo{
			ID:             info.RootFolderID,
			StorageID:      info.ID,
			Name:           info.Description,
			IsFolder:       true,
			MetadataLoaded: true,
		}, storage.catalog)
	}

	return storage
}

func (s *remoteStorage) ID() string {
	return s.info.ID
}

func (s *remoteStorage) Description() string {
	return s.info.Description
}

func (s *remoteStorage) RootFolder() Folder {
	if s.root == nil {
		return nil
	}
	return s.root
}

func (s *remoteStorage) CatalogProgress() *progress.Progress {
	return s.catalog
}
