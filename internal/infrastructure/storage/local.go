package storage

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore persists processed product images and serves as the seam the
// service layer is tested through.
type FileStore interface {
	Save(fileName string, data []byte) error
	Remove(fileName string) error
}

type LocalFileStore struct {
	dir string
}

func CreateLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Save(fileName string, data []byte) error {
	err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644)
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
	}
	return err
}

func (s *LocalFileStore) Remove(fileName string) error {
	err := os.Remove(filepath.Join(s.dir, fileName))
	if err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("component", "Remove").Msg("")
		return err
	}
	return nil
}
