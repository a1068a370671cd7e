// Package simulator implements a camera whose memory cards are directories.
//
// Items are addressed as "<storage id>:<slash path>", with "<storage id>:/"
// naming a card's root folder.
package simulator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/models"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/rwcarlsen/goexif/exif"
)

const (
	ThumbMaxSize = 160
	ThumbQuality = 80
)

type Camera struct {
	info          models.DeviceInfo
	storages      []*Storage
	eagerMetadata bool
	reportCatalog bool

	mu         sync.RWMutex
	categories models.CommandCategories

	logger *logger.Logger
}

func New(settings config.DeviceSettings, storages []*Storage, logger *logger.Logger) *Camera {
	return &Camera{
		info:          settings.Info,
		storages:      storages,
		eagerMetadata: settings.EagerMetadata,
		reportCatalog: settings.ReportCatalog,
		categories:    settings.Categories,
		logger:        logger,
	}
}

func (c *Camera) Info() models.DeviceInfo {
	return c.info
}

func (c *Camera) Categories() models.CommandCategories {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories
}

// SetCategories switches the simulated command mode.
func (c *Camera) SetCategories(categories models.CommandCategories) {
	c.mu.Lock()
	c.categories = categories
	c.mu.Unlock()
	c.logger.Info().Strs("categories", categories.Names()).Msg("command categories changed")
}

func (c *Camera) StorageInfos() ([]models.StorageInfo, error) {
	infos := make([]models.StorageInfo, 0, len(c.storages))
	for _, s := range c.storages {
		info := models.StorageInfo{ID: s.id, Description: s.description}
		if s.readable() {
			info.RootFolderID = itemID(s.id, rootPath)
			if c.reportCatalog {
				count, err := s.folderCount()
				if err != nil {
					return nil, fmt.Errorf("count folders on %s: %w", s.id, err)
				}
				info.Catalog = &models.CatalogInfo{FolderCount: count}
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Children lists a folder: sub-folders and files sorted by name, hidden
// entries skipped. Files carry metadata only in eager mode.
func (c *Camera) Children(id string) ([]models.ItemInfo, error) {
	storage, p, err := c.resolve(id)
	if err != nil {
		return nil, err
	}

	if p != rootPath {
		info, err := storage.fs.Stat(p)
		if err != nil {
			return nil, mapFSError(err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotAFolder, id)
		}
	}

	entries, err := storage.fs.ReadDir(p)
	if err != nil {
		return nil, mapFSError(err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	children := make([]models.ItemInfo, 0, len(entries))
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}

		childPath := path.Join(p, entry.Name())
		if entry.IsDir() {
			children = append(children, folderInfo(storage, childPath, entry.Name()))
			continue
		}

		if c.eagerMetadata {
			child, err := fileMetadata(storage, childPath, entry)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}

		children = append(children, models.ItemInfo{
			ID:        itemID(storage.id, childPath),
			StorageID: storage.id,
		})
	}

	return children, nil
}

// Metadata returns an item with its metadata loaded.
func (c *Camera) Metadata(id string) (models.ItemInfo, error) {
	storage, p, err := c.resolve(id)
	if err != nil {
		return models.ItemInfo{}, err
	}

	if p == rootPath {
		return folderInfo(storage, p, storage.description), nil
	}

	info, err := storage.fs.Stat(p)
	if err != nil {
		return models.ItemInfo{}, mapFSError(err)
	}
	if info.IsDir() {
		return folderInfo(storage, p, info.Name()), nil
	}

	return fileMetadata(storage, p, info)
}

// Thumbnail returns a JPEG preview of an image file. The thumbnail embedded
// in the EXIF data is preferred; otherwise the image is scaled down.
func (c *Camera) Thumbnail(id string) ([]byte, error) {
	storage, p, err := c.resolve(id)
	if err != nil {
		return nil, err
	}

	if p == rootPath {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, id)
	}

	info, err := storage.fs.Stat(p)
	if err != nil {
		return nil, mapFSError(err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, id)
	}

	f, err := storage.fs.Open(p)
	if err != nil {
		return nil, mapFSError(err)
	}
	defer f.Close()

	mt, err := sniff(f, p)
	if err != nil {
		return nil, err
	}
	if !isImage(mt) {
		return nil, fmt.Errorf("%w: %s is not an image", ErrNoThumbnail, id)
	}

	// only images are read in full
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	if x, ok := decodeExif(mt, bytes.NewReader(data)); ok {
		if thumb, err := x.JpegThumbnail(); err == nil && len(thumb) > 0 {
			return thumb, nil
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoThumbnail, id, err)
	}

	var buf bytes.Buffer
	thumb := imaging.Fit(img, ThumbMaxSize, ThumbMaxSize, imaging.Lanczos)
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(ThumbQuality)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// resolve checks the command mode and splits id into its storage and path.
func (c *Camera) resolve(id string) (*Storage, string, error) {
	if !c.Categories().Contains(models.FilesystemAccess) {
		return nil, "", ErrFilesystemAccessDenied
	}

	storageID, p, ok := strings.Cut(id, ":")
	if !ok || storageID == "" || !strings.HasPrefix(p, "/") {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidItemID, id)
	}

	for _, s := range c.storages {
		if s.id != storageID {
			continue
		}
		if !s.readable() {
			return nil, "", fmt.Errorf("%w: storage %s is not readable", ErrItemNotFound, storageID)
		}
		return s, path.Clean(p), nil
	}

	return nil, "", fmt.Errorf("%w: unknown storage %s", ErrItemNotFound, storageID)
}

func folderInfo(storage *Storage, p, name string) models.ItemInfo {
	return models.ItemInfo{
		ID:             itemID(storage.id, p),
		StorageID:      storage.id,
		Name:           name,
		IsFolder:       true,
		MetadataLoaded: true,
	}
}

// fileMetadata reads only the file's header: enough to sniff the type and,
// for JPEG and TIFF, the EXIF capture date.
func fileMetadata(storage *Storage, p string, info os.FileInfo) (models.ItemInfo, error) {
	f, err := storage.fs.Open(p)
	if err != nil {
		return models.ItemInfo{}, mapFSError(err)
	}
	defer f.Close()

	mt, err := sniff(f, p)
	if err != nil {
		return models.ItemInfo{}, err
	}

	created := info.ModTime()
	if x, ok := decodeExif(mt, f); ok {
		if taken, err := x.DateTime(); err == nil {
			created = taken
		}
	}

	item := models.ItemInfo{
		ID:             itemID(storage.id, p),
		StorageID:      storage.id,
		Name:           info.Name(),
		Size:           info.Size(),
		MetadataLoaded: true,
		KnownImageType: isImage(mt),
	}
	if !created.IsZero() {
		created = created.UTC().Truncate(time.Second)
		item.CreatedAt = &created
	}

	return item, nil
}

// sniff detects the type from the file's first bytes and rewinds it.
func sniff(f billy.File, p string) (*mimetype.MIME, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect type of %s: %w", p, err)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", p, err)
	}
	return mt, nil
}

func isImage(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

// decodeExif reads EXIF from the formats that carry it.
func decodeExif(mt *mimetype.MIME, r io.Reader) (*exif.Exif, bool) {
	if !mt.Is("image/jpeg") && !mt.Is("image/tiff") {
		return nil, false
	}
	x, err := exif.Decode(r)
	if err != nil {
		return nil, false
	}
	return x, true
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func itemID(storageID, p string) string {
	return storageID + ":" + p
}

func mapFSError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)
	}
	return err
}
