// Package store defines the chain store the ledger persists confirmed blocks to.
package store

import (
	"context"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainStore keeps confirmed blocks addressable by height and by hash.
	// Missing entries are reported as model.ErrNotFound; LatestHeight reports
	// model.ErrNotFound on an empty store.
	ChainStore interface {
		BlockByHeight(ctx context.Context, height uint32) (model.Block, error)
		BlockByHash(ctx context.Context, hash model.Hash) (model.Block, error)
		PutBlock(ctx context.Context, block model.Block) error
		LatestHeight(ctx context.Context) (uint32, error)
		Close() error
	}

	// CacheMetrics counts cache lookups per resource.
	CacheMetrics interface {
		ObserveLookup(resource string, hit bool)
	}
)
