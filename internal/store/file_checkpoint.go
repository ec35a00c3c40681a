// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/helios-keeper/internal/logger"
)

// CheckpointFileName is the bbolt file created inside a light-client data
// directory.
const CheckpointFileName = "helios.db"

var checkpointsBucket = []byte("checkpoints")

// CheckpointStorePool hands out [CheckpointStore] handles keyed by data
// directory. bbolt takes an exclusive file lock, so two clients sharing a
// directory (an old session and its replacement) must share one *bolt.DB.
// The file is closed when the last handle is released.
type CheckpointStorePool struct {
	logger *logger.Logger

	mu   sync.Mutex
	open map[string]*sharedBolt
}

type sharedBolt struct {
	db   *bolt.DB
	refs int
}

// NewCheckpointStorePool returns an empty pool.
func NewCheckpointStorePool(log *logger.Logger) *CheckpointStorePool {
	return &CheckpointStorePool{
		logger: log,
		open:   make(map[string]*sharedBolt),
	}
}

// Acquire opens (or reuses) <dir>/helios.db. The directory is created with
// 0700 permissions when missing.
func (p *CheckpointStorePool) Acquire(dir string) (CheckpointStore, error) {
	path, err := filepath.Abs(filepath.Join(dir, CheckpointFileName))
	if err != nil {
		return nil, fmt.Errorf("resolve checkpoint file: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if shared, ok := p.open[path]; ok {
		shared.refs++
		return &boltCheckpointStore{pool: p, path: path, db: shared.db}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open checkpoint file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(checkpointsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create checkpoints bucket: %w", err)
	}

	p.open[path] = &sharedBolt{db: db, refs: 1}
	p.logger.Debug().Str("path", path).Msg("checkpoint store opened")

	return &boltCheckpointStore{pool: p, path: path, db: db}, nil
}

func (p *CheckpointStorePool) release(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	shared, ok := p.open[path]
	if !ok {
		return nil
	}
	shared.refs--
	if shared.refs > 0 {
		return nil
	}

	delete(p.open, path)
	p.logger.Debug().Str("path", path).Msg("checkpoint store closed")
	return shared.db.Close()
}

// Close releases every open file regardless of outstanding handles.
func (p *CheckpointStorePool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for path, shared := range p.open {
		if err := shared.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.open, path)
	}
	return firstErr
}

type boltCheckpointStore struct {
	pool   *CheckpointStorePool
	path   string
	db     *bolt.DB
	closed atomic.Bool
}

func (s *boltCheckpointStore) LoadCheckpoint(network string) (common.Hash, bool, error) {
	if s.closed.Load() {
		return common.Hash{}, false, ErrCheckpointStoreClosed
	}

	var (
		root  common.Hash
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(checkpointsBucket)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(network))
		if v == nil {
			return nil
		}
		if len(v) != common.HashLength {
			return fmt.Errorf("%w: %d bytes for %s", ErrCorruptCheckpoint, len(v), network)
		}
		root = common.BytesToHash(v)
		found = true
		return nil
	})
	if err != nil {
		return common.Hash{}, false, err
	}

	return root, found, nil
}

func (s *boltCheckpointStore) SaveCheckpoint(network string, root common.Hash) error {
	if s.closed.Load() {
		return ErrCheckpointStoreClosed
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(checkpointsBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(network), root.Bytes())
	})
}

func (s *boltCheckpointStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.pool.release(s.path)
}
