// Package windowstate saves and restores window geometry across runs.
package windowstate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vyre/desktop/internal/shell"
)

const lockTimeout = 2 * time.Second

// Store is the on-disk window state document.
type Store struct {
	mu       sync.RWMutex
	filePath string
	lock     *fileLock
	doc      document
}

type document struct {
	SavedAt time.Time                 `yaml:"saved_at,omitempty"`
	Windows map[string]shell.Geometry `yaml:"windows"`
}

// NewStore creates a store backed by filePath. Nothing is read until Load.
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
		lock:     newFileLock(filePath),
		doc:      document{Windows: make(map[string]shell.Geometry)},
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads the state file. A missing file leaves the store empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read state file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal state: %w", err)
	}
	if doc.Windows == nil {
		doc.Windows = make(map[string]shell.Geometry)
	}
	s.doc = doc
	return nil
}

// Save writes the state file while holding the cross-process lock.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	if err := s.lock.lock(lockTimeout); err != nil {
		return err
	}
	defer s.lock.unlock()

	s.doc.SavedAt = time.Now().UTC()
	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Get returns the saved geometry for label.
func (s *Store) Get(label string) (shell.Geometry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.doc.Windows[label]
	if !ok || !g.Valid() {
		return shell.Geometry{}, false
	}
	return g, true
}

// Put records geometry for label. Geometry without a positive size is dropped.
func (s *Store) Put(label string, g shell.Geometry) bool {
	if !g.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Windows[label] = g
	return true
}

// SavedAt returns the time of the last successful save or load.
func (s *Store) SavedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.SavedAt
}
