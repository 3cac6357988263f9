// Package client is the Go embedding of the storybook site's browser-side
// logic: session identity, interaction tracking, fire-and-forget dispatch
// and the local form-draft store. Kiosk builds and end-to-end harnesses use
// it against the same collection endpoint the website posts to.
package client

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Storage is the localStorage analog: string keys, string values,
// synchronous access. FileStorage persists across runs (localStorage);
// MemoryStorage lives for one run (sessionStorage).
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage is an in-memory Storage, safe for concurrent use.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// FileStorage keeps the key-value map as one JSON file. Write failures are
// logged and otherwise ignored, matching how the browser treats a full or
// blocked localStorage: the feature degrades, the page keeps working.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStorage loads (or starts) the store at path. A corrupted file is
// discarded and replaced on the next write.
func NewFileStorage(path string) *FileStorage {
	s := &FileStorage{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &s.values); err != nil {
			log.Printf("[client] discarding corrupted storage file %s: %v", path, err)
			s.values = map[string]string{}
		}
	}
	return s
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.flush()
}

func (s *FileStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.flush()
}

func (s *FileStorage) flush() {
	raw, err := json.Marshal(s.values)
	if err == nil {
		err = os.WriteFile(s.path, raw, 0o644)
	}
	if err != nil {
		log.Printf("[client] storage write failed: %v", err)
	}
}
