package simulator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const rootPath = "/"

// Storage is one simulated memory card backed by a billy filesystem.
type Storage struct {
	id          string
	description string
	fs          billy.Filesystem
}

// NewStorage wraps fs. A nil fs simulates an unreadable card.
func NewStorage(id, description string, fs billy.Filesystem) *Storage {
	return &Storage{id: id, description: description, fs: fs}
}

// OpenStorages exposes each directory as a storage named sd1, sd2 and so
// on. A directory that does not exist becomes an unreadable storage.
func OpenStorages(dirs []string) []*Storage {
	storages := make([]*Storage, 0, len(dirs))
	for i, dir := range dirs {
		id := fmt.Sprintf("sd%d", i+1)
		description := filepath.Base(filepath.Clean(dir))

		var fs billy.Filesystem
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fs = osfs.New(dir)
		}
		storages = append(storages, NewStorage(id, description, fs))
	}
	return storages
}

func (s *Storage) ID() string {
	return s.id
}

func (s *Storage) readable() bool {
	return s.fs != nil
}

// folderCount counts every folder, the root included.
func (s *Storage) folderCount() (int64, error) {
	var count int64
	err := util.Walk(s.fs, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != rootPath && isHidden(info.Name()) {
				return filepath.SkipDir
			}
			count++
		}
		return nil
	})
	return count, err
}
