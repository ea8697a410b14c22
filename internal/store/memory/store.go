// Package memory is a chain store that keeps blocks in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

type Store struct {
	mu      sync.RWMutex
	blocks  map[uint32]model.Block
	heights map[model.Hash]uint32
	latest  uint32
	closed  bool
}

func New() *Store {
	return &Store{
		blocks:  make(map[uint32]model.Block),
		heights: make(map[model.Hash]uint32),
	}
}

func (s *Store) BlockByHeight(_ context.Context, height uint32) (model.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.blocks[height]
	if !ok {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, model.ErrNotFound)
	}
	return block, nil
}

func (s *Store) BlockByHash(_ context.Context, hash model.Hash) (model.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	height, ok := s.heights[hash]
	if !ok {
		return model.Block{}, fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
	}
	return s.blocks[height], nil
}

func (s *Store) PutBlock(_ context.Context, block model.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("put block %d: store closed", block.Height())
	}
	if old, ok := s.blocks[block.Height()]; ok {
		delete(s.heights, old.Hash())
	}
	s.blocks[block.Height()] = block
	s.heights[block.Hash()] = block.Height()
	if block.Height() > s.latest {
		s.latest = block.Height()
	}
	return nil
}

func (s *Store) LatestHeight(_ context.Context) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.blocks) == 0 {
		return 0, fmt.Errorf("latest height: %w", model.ErrNotFound)
	}
	return s.latest, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
