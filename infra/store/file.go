// Package store persists model bundles on disk. One blob lives at a fixed
// path; writes are whole-file and last-writer-wins.
package store

import (
	"errors"
	"os"

	"github.com/campusflow/trafficq/core/forecast"
	corelogger "github.com/campusflow/trafficq/core/logger"
)

// Config locates the persisted model blob.
type Config struct {
	Path string `json:"path"`
}

// SetDefaults applies the standard blob location.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = "traffic_models.json"
	}
}

// FileStore implements forecast.ModelStore on a single file. Failures are
// logged and reported as boolean results; they never propagate as errors to
// the forecaster.
type FileStore struct {
	path string
	log  corelogger.Logger
}

// NewFileStore creates a store writing to cfg.Path.
func NewFileStore(cfg Config, log corelogger.Logger) *FileStore {
	cfg.SetDefaults()
	return &FileStore{path: cfg.Path, log: log}
}

// Save writes the bundle blob, replacing any previous one.
func (s *FileStore) Save(b *forecast.ModelBundle) bool {
	data, err := forecast.EncodeBundle(b)
	if err != nil {
		s.log.Errorf("encode model bundle: %v", err)
		return false
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Errorf("write %s: %v", s.path, err)
		return false
	}
	s.log.Infof("model bundle %s saved to %s", b.ID, s.path)
	return true
}

// Load reads the persisted bundle. It returns nil when the file is missing
// or the blob cannot be decoded.
func (s *FileStore) Load() *forecast.ModelBundle {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warnf("read %s: %v", s.path, err)
		}
		return nil
	}
	b, err := forecast.DecodeBundle(data)
	if err != nil {
		s.log.Errorf("load %s: %v", s.path, err)
		return nil
	}
	s.log.Infof("model bundle %s loaded from %s", b.ID, s.path)
	return b
}
