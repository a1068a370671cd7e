// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scanner walks a camera's storages and collects the files that
// match a predicate.
package scanner

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/internal/utils"
	"github.com/MKhiriev/go-cam-scan/models"
)

// Predicate selects files. A nil Predicate accepts everything.
type Predicate func(item device.Item) bool

// DoneFunc receives the outcome of a scan: either every matched file in
// traversal order, or the first error. It is called exactly once.
type DoneFunc func(items []device.Item, err error)

type Scanner struct {
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func New(logger *logger.Logger) *Scanner {
	return &Scanner{
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// ScanForFiles lists every storage of camera and reports matching files to
// done.
//
// If the camera does not allow filesystem access, or none of its storages has
// a root folder, done is called before ScanForFiles returns, no remote call
// is made and the returned progress is nil. Otherwise the walk runs on its
// own goroutine and the returned progress, nil when no storage reports one,
// tracks it. Cancelling ctx fails the scan at its next folder listing;
// listings already issued run to completion.
func (s *Scanner) ScanForFiles(ctx context.Context, camera device.Camera, predicate Predicate, done DoneFunc) *progress.Progress {
	if !camera.CommandCategories().Contains(models.FilesystemAccess) {
		done(nil, ErrIncorrectCommandCategory)
		return nil
	}

	roots, handles := storageRoots(camera.StorageDevices())
	if len(roots) == 0 {
		done(nil, ErrNotAvailable)
		return nil
	}

	scanID := s.ids.Generate()
	ctx = utils.WithTraceID(ctx, scanID)
	log := s.logger.WithField("scan_id", scanID)

	go func() {
		started := time.Now()
		log.Info().Int("roots", len(roots)).Msg("scan started")

		items, err := s.Walk(ctx, roots, predicate)
		if err != nil {
			log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("scan failed")
			done(nil, err)
			return
		}

		log.Info().Int("items", len(items)).Dur("elapsed", time.Since(started)).Msg("scan finished")
		done(items, nil)
	}()

	return progress.Aggregate(handles...)
}

// Walk lists roots and all their descendants, one folder at a time.
//
// Every subtree is drained before its next sibling: a folder's own matching
// files come first, then each of its sub-folders in order. The first listing
// error ends the walk and is returned without partial results.
func (s *Scanner) Walk(ctx context.Context, roots []device.Folder, predicate Predicate) ([]device.Item, error) {
	if len(roots) == 0 {
		return nil, ErrNotAvailable
	}

	worklist := append([]device.Folder(nil), roots...)
	var matched []device.Item

	for len(worklist) > 0 {
		folder := worklist[0]
		worklist = worklist[1:]

		if err := folder.LoadChildren(ctx); err != nil {
			return nil, err
		}

		var subfolders []device.Folder
		for _, child := range folder.Children() {
			if sub, ok := child.(device.Folder); ok {
				subfolders = append(subfolders, sub)
				continue
			}
			if predicate == nil || predicate(child) {
				matched = append(matched, child)
			}
		}

		if len(subfolders) > 0 {
			worklist = append(subfolders, worklist...)
		}
	}

	return matched, nil
}

func storageRoots(storages []device.StorageDevice) ([]device.Folder, []*progress.Progress) {
	roots := make([]device.Folder, 0, len(storages))
	handles := make([]*progress.Progress, 0, len(storages))

	for _, storage := range storages {
		root := storage.RootFolder()
		if root == nil {
			continue
		}
		roots = append(roots, root)
		handles = append(handles, storage.CatalogProgress())
	}

	return roots, handles
}
