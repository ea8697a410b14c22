package store

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

const DefaultCacheSize = 1024

// Cached keeps recently read and written blocks in memory in front of another store.
type Cached struct {
	ChainStore
	metrics CacheMetrics
	blocks  *lru.Cache[uint32, model.Block]
	heights *lru.Cache[model.Hash, uint32]
}

// NewCached wraps inner with an LRU of size blocks.
func NewCached(inner ChainStore, size int, metrics CacheMetrics) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	blocks, err := lru.New[uint32, model.Block](size)
	if err != nil {
		return nil, fmt.Errorf("create block cache: %w", err)
	}
	heights, err := lru.New[model.Hash, uint32](size)
	if err != nil {
		return nil, fmt.Errorf("create hash cache: %w", err)
	}
	return &Cached{ChainStore: inner, metrics: metrics, blocks: blocks, heights: heights}, nil
}

func (c *Cached) BlockByHeight(ctx context.Context, height uint32) (model.Block, error) {
	if block, ok := c.blocks.Get(height); ok {
		c.metrics.ObserveLookup("block", true)
		return block, nil
	}
	c.metrics.ObserveLookup("block", false)

	block, err := c.ChainStore.BlockByHeight(ctx, height)
	if err != nil {
		return model.Block{}, err
	}
	c.add(block)
	return block, nil
}

func (c *Cached) BlockByHash(ctx context.Context, hash model.Hash) (model.Block, error) {
	if height, ok := c.heights.Get(hash); ok {
		c.metrics.ObserveLookup("hash", true)
		return c.BlockByHeight(ctx, height)
	}
	c.metrics.ObserveLookup("hash", false)

	block, err := c.ChainStore.BlockByHash(ctx, hash)
	if err != nil {
		return model.Block{}, err
	}
	c.add(block)
	return block, nil
}

// PutBlock writes through and caches the block once the inner store accepted it.
func (c *Cached) PutBlock(ctx context.Context, block model.Block) error {
	if err := c.ChainStore.PutBlock(ctx, block); err != nil {
		return err
	}
	c.add(block)
	return nil
}

func (c *Cached) add(block model.Block) {
	c.blocks.Add(block.Height(), block)
	c.heights.Add(block.Hash(), block.Height())
}
