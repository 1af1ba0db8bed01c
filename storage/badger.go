// Package storage persists generated personas and fetched activity records in
// BadgerDB so repeat requests for the same profile are served from cache.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/echolytics/persona-engine/core"
)

// Store is the persistence contract the API layer depends on.
type Store interface {
	// Generic operations
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	GetByPrefix(prefix string) (map[string][]byte, error)
	PutObject(key string, obj interface{}) error
	GetObject(key string, obj interface{}) error

	// Domain-specific operations
	SavePersona(p *core.Persona) error
	GetPersona(username string) (*core.Persona, error)
	DeletePersona(username string) error
	ListPersonas() ([]string, error)
	SaveRecord(rec *core.ActivityRecord) error
	GetRecord(username string) (*core.ActivityRecord, error)

	// Management operations
	Close() error
	RunGC() error
}

// Metrics tracks store operation counts with atomic counters.
type Metrics struct {
	PutCount    int64
	GetCount    int64
	DeleteCount int64
	PrefixCount int64
	Errors      int64
}

// BadgerStore implements Store on top of BadgerDB.
type BadgerStore struct {
	db      *badger.DB
	mu      sync.Mutex
	config  Config
	metrics Metrics
}

var (
	instances   = make(map[string]*BadgerStore)
	instancesMu sync.RWMutex
)

// errKeyNotFound marks a GetObject miss so callers can translate it to their
// own sentinel.
var errKeyNotFound = errors.New("key not found")

// Open returns the store for dataDir, creating it on first use. Instances are
// shared; concurrent callers for the same directory get the same store.
func Open(dataDir string) (*BadgerStore, error) {
	return OpenWithConfig(DefaultConfig(dataDir))
}

// OpenWithConfig returns a store with custom configuration.
func OpenWithConfig(config Config) (*BadgerStore, error) {
	instancesMu.RLock()
	instance, exists := instances[config.DataDir]
	instancesMu.RUnlock()
	if exists {
		return instance, nil
	}

	instancesMu.Lock()
	defer instancesMu.Unlock()

	// Check again in case another goroutine created it while we were waiting
	if instance, exists = instances[config.DataDir]; exists {
		return instance, nil
	}

	dbPath := filepath.Join(config.DataDir, "badgerdb")
	opts := badger.DefaultOptions(dbPath)
	if config.DisableLogging {
		opts.Logger = nil
	}
	opts.InMemory = config.InMemory
	opts.SyncWrites = config.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	instance = &BadgerStore{db: db, config: config}
	instances[config.DataDir] = instance

	if config.GCInterval > 0 {
		go instance.startGCRoutine(time.Duration(config.GCInterval) * time.Second)
	}

	return instance, nil
}

func (s *BadgerStore) startGCRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.RunGC(); err != nil && err != badger.ErrNoRewrite {
			log.Printf("BadgerDB GC failed: %v", err)
		}
	}
}

// Close closes the underlying database and forgets the shared instance.
func (s *BadgerStore) Close() error {
	instancesMu.Lock()
	delete(instances, s.config.DataDir)
	instancesMu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RunGC runs value-log garbage collection on the database.
func (s *BadgerStore) RunGC() error {
	return s.db.RunValueLogGC(0.5) // Clean up if at least 50% can be discarded
}

func (s *BadgerStore) recordError(err error) {
	if err != nil {
		atomic.AddInt64(&s.metrics.Errors, 1)
	}
}

// Stats returns a snapshot of the operation counters.
func (s *BadgerStore) Stats() Metrics {
	return Metrics{
		PutCount:    atomic.LoadInt64(&s.metrics.PutCount),
		GetCount:    atomic.LoadInt64(&s.metrics.GetCount),
		DeleteCount: atomic.LoadInt64(&s.metrics.DeleteCount),
		PrefixCount: atomic.LoadInt64(&s.metrics.PrefixCount),
		Errors:      atomic.LoadInt64(&s.metrics.Errors),
	}
}

// Put stores a key-value pair in the database.
func (s *BadgerStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.PutCount, 1)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	s.recordError(err)
	return err
}

// Get retrieves a value by key. A missing key returns a nil value, not an error.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.GetCount, 1)
	var valCopy []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			valCopy = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		s.recordError(err)
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return valCopy, nil
}

// Delete removes a key-value pair from the database.
func (s *BadgerStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.DeleteCount, 1)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	s.recordError(err)
	return err
}

// GetByPrefix retrieves all key-value pairs with a given prefix.
func (s *BadgerStore) GetByPrefix(prefix string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	atomic.AddInt64(&s.metrics.PrefixCount, 1)
	result := make(map[string][]byte)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			err := item.Value(func(v []byte) error {
				result[string(k)] = append([]byte{}, v...)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.recordError(err)
		return nil, fmt.Errorf("failed to get values by prefix: %w", err)
	}

	return result, nil
}

// PutObject serializes and stores an object in the database.
func (s *BadgerStore) PutObject(key string, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal object: %w", err)
	}
	return s.Put(key, data)
}

// GetObject retrieves and deserializes an object from the database.
func (s *BadgerStore) GetObject(key string, obj interface{}) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: %s", errKeyNotFound, key)
	}
	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to unmarshal object: %w", err)
	}
	return nil
}
