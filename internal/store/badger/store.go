// Package badger is a chain store persisted in an embedded BadgerDB.
package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

var (
	heightPrefix = []byte("h/")
	hashPrefix   = []byte("b/")
	latestKey    = []byte("m/latest")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Options configures where and how the database is opened.
type Options struct {
	Path       string
	InMemory   bool
	SyncWrites bool
}

type Store struct {
	db      *badgerdb.DB
	metrics Metrics
}

// Open opens or creates the database described by opts.
func Open(opts Options, logger *zap.Logger, metrics Metrics) (*Store, error) {
	if opts.Path == "" && !opts.InMemory {
		return nil, errors.New("badger path is required")
	}
	if opts.InMemory {
		opts.Path = ""
	}

	dbOpts := badgerdb.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(newLogger(logger))

	db, err := badgerdb.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	return &Store{db: db, metrics: metrics}, nil
}

func (s *Store) BlockByHeight(_ context.Context, height uint32) (model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_by_height", notFoundIsSuccess(err), start)
	}()

	var block model.Block
	err = s.db.View(func(txn *badgerdb.Txn) error {
		var getErr error
		block, getErr = getBlock(txn, height)
		return getErr
	})
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

func (s *Store) BlockByHash(_ context.Context, hash model.Hash) (model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_by_hash", notFoundIsSuccess(err), start)
	}()

	var block model.Block
	err = s.db.View(func(txn *badgerdb.Txn) error {
		raw, getErr := get(txn, hashKey(hash))
		if getErr != nil {
			return fmt.Errorf("block %s: %w", hash, getErr)
		}
		if len(raw) != 4 {
			return fmt.Errorf("block %s: corrupt height index entry", hash)
		}
		block, getErr = getBlock(txn, binary.BigEndian.Uint32(raw))
		return getErr
	})
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

// PutBlock writes the block, its hash index entry and, when it is the highest so far,
// the latest height marker in one transaction.
func (s *Store) PutBlock(_ context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("put_block", err, start)
	}()

	payload, err := codec.Marshal(block)
	if err != nil {
		return fmt.Errorf("encode block %d: %w", block.Height(), err)
	}
	height := encodeHeight(block.Height())

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		if setErr := txn.Set(heightKey(block.Height()), payload); setErr != nil {
			return setErr
		}
		if setErr := txn.Set(hashKey(block.Hash()), height); setErr != nil {
			return setErr
		}
		latest, getErr := get(txn, latestKey)
		switch {
		case errors.Is(getErr, model.ErrNotFound):
		case getErr != nil:
			return getErr
		case binary.BigEndian.Uint32(latest) >= block.Height():
			return nil
		}
		return txn.Set(latestKey, height)
	})
	if err != nil {
		return fmt.Errorf("put block %d: %w", block.Height(), err)
	}
	return nil
}

func (s *Store) LatestHeight(_ context.Context) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("latest_height", notFoundIsSuccess(err), start)
	}()

	var raw []byte
	err = s.db.View(func(txn *badgerdb.Txn) error {
		var getErr error
		raw, getErr = get(txn, latestKey)
		return getErr
	})
	if err != nil {
		return 0, fmt.Errorf("latest height: %w", err)
	}
	return binary.BigEndian.Uint32(raw), nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close badger: %w", err)
	}
	return nil
}

func getBlock(txn *badgerdb.Txn, height uint32) (model.Block, error) {
	raw, err := get(txn, heightKey(height))
	if err != nil {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, err)
	}
	block, err := codec.Decode[model.Block](raw)
	if err != nil {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, err)
	}
	return block, nil
}

func get(txn *badgerdb.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func heightKey(height uint32) []byte {
	return append(append([]byte{}, heightPrefix...), encodeHeight(height)...)
}

func hashKey(hash model.Hash) []byte {
	return append(append([]byte{}, hashPrefix...), hash[:]...)
}

func encodeHeight(height uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, height)
	return b
}

// a miss is an answer, not a storage failure
func notFoundIsSuccess(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	return err
}
