package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		LatestHeight() uint32
		LatestHash() model.Hash
		LatestBlock(ctx context.Context) (model.Block, error)
		GetBlock(ctx context.Context, height uint32) (model.Block, error)
		GetTransactions(ctx context.Context, height uint32) ([]model.Transaction, error)
		GetTransaction(ctx context.Context, id model.Hash) (model.Transaction, error)
		StatePath(ctx context.Context, commitment model.Field) (model.StatePath, error)
		FindRecords(ctx context.Context, viewKey account.ViewKey, filter ledger.RecordsFilter) (ledger.Records, error)
		MemoryPoolSize() int
		MemoryPoolTransactions() []model.Transaction
		AddToMemoryPool(tx model.Transaction) (model.Hash, error)
		AddNextBlock(ctx context.Context, block model.Block) error
		ProposeNextBlock(timestamp int64, limit int) (model.Block, error)
	}
	Metrics interface {
		ObserveRequest(kind string, err error, started time.Time)
		ObserveRead(operation string, err error, started time.Time)
		SetQueueDepth(depth int)
	}
	BlockQueue interface {
		Submit(ctx context.Context, req Request) error
		MemoryPoolSize() int
	}
)
