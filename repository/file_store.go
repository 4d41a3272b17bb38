package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"natanbot/domain/entities"
	"natanbot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// FileStore is a JSON object of documents, mirrored in memory and rewritten
// in full on every mutation. Documents are kept encoded so callers always
// get their own copy and a failed write can restore the previous bytes.
type FileStore[T any] struct {
	mu     sync.RWMutex
	domain string
	path   string
	docs   map[string]json.RawMessage

	writeFile func(path string, data []byte) error
}

// OpenFileStore loads path. A missing file is an empty collection; an
// unreadable or unparsable one is a StoreCorruptError.
func OpenFileStore[T any](domain, path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		domain:    domain,
		path:      path,
		docs:      make(map[string]json.RawMessage),
		writeFile: atomicWriteFile,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore[T]) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithFields(log.Fields{
			"domain": s.domain,
			"path":   s.path,
		}).Info("Store file not found, starting empty")
		return nil
	}
	if err != nil {
		return &entities.StoreCorruptError{Domain: s.domain, Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &s.docs); err != nil {
		return &entities.StoreCorruptError{Domain: s.domain, Path: s.path, Err: err}
	}
	if s.docs == nil {
		s.docs = make(map[string]json.RawMessage)
	}

	log.WithFields(log.Fields{
		"domain":    s.domain,
		"path":      s.path,
		"documents": len(s.docs),
	}).Info("Store loaded")
	return nil
}

// Path returns the backing file
func (s *FileStore[T]) Path() string {
	return s.path
}

// Get decodes the document stored under key
func (s *FileStore[T]) Get(key string) (*T, bool, error) {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, &entities.StoreCorruptError{Domain: s.domain, Path: s.path, Err: fmt.Errorf("document %s: %w", key, err)}
	}
	return &doc, true, nil
}

// List decodes every document whose key starts with prefix, in key order
func (s *FileStore[T]) List(prefix string) ([]*T, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	raws := make([]json.RawMessage, len(keys))
	for i, k := range keys {
		raws[i] = s.docs[k]
	}
	s.mu.RUnlock()

	docs := make([]*T, 0, len(raws))
	for i, raw := range raws {
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, &entities.StoreCorruptError{Domain: s.domain, Path: s.path, Err: fmt.Errorf("document %s: %w", keys[i], err)}
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

// Put stores every entry and flushes once. On a failed flush the previous
// contents are restored and a StoreWriteError is returned.
func (s *FileStore[T]) Put(entries map[string]*T) error {
	encoded := make(map[string]json.RawMessage, len(entries))
	for k, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s document %s: %w", s.domain, k, err)
		}
		encoded[k] = raw
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := make(map[string]json.RawMessage, len(encoded))
	for k, raw := range encoded {
		if old, ok := s.docs[k]; ok {
			previous[k] = old
		}
		s.docs[k] = raw
	}

	if err := s.flushLocked(); err != nil {
		for k := range encoded {
			if old, ok := previous[k]; ok {
				s.docs[k] = old
			} else {
				delete(s.docs, k)
			}
		}
		return err
	}
	return nil
}

// Delete removes keys and flushes, reporting how many existed
func (s *FileStore[T]) Delete(keys ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]json.RawMessage)
	for _, k := range keys {
		if old, ok := s.docs[k]; ok {
			removed[k] = old
			delete(s.docs, k)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}

	if err := s.flushLocked(); err != nil {
		for k, old := range removed {
			s.docs[k] = old
		}
		return 0, err
	}
	return len(removed), nil
}

func (s *FileStore[T]) flushLocked() error {
	start := time.Now()
	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err == nil {
		err = s.writeFile(s.path, data)
	}
	observability.GetMetrics().RecordStoreWrite(s.domain, time.Since(start), err)

	if err != nil {
		log.WithFields(log.Fields{
			"domain": s.domain,
			"path":   s.path,
			"error":  err,
		}).Error("Failed to flush store")
		return &entities.StoreWriteError{Domain: s.domain, Path: s.path, Err: err}
	}

	log.WithFields(log.Fields{
		"domain": s.domain,
		"bytes":  len(data),
	}).Debug("Store flushed")
	return nil
}

// atomicWriteFile writes through a temp file in the same directory and
// renames it over path
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
