package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerService interface {
		LatestHeight() uint32
		LatestHash() model.Hash
		LatestBlock(ctx context.Context) (model.Block, error)
		GetBlock(ctx context.Context, height uint32) (model.Block, error)
		GetTransactions(ctx context.Context, height uint32) ([]model.Transaction, error)
		GetTransaction(ctx context.Context, id model.Hash) (model.Transaction, error)
		StatePath(ctx context.Context, commitment model.Field) (model.StatePath, error)
		FindRecords(ctx context.Context, viewKey account.ViewKey, filter ledger.RecordsFilter) (ledger.Records, error)
		MemoryPoolTransactions() []model.Transaction
		Submit(ctx context.Context, req service.Request) error
	}
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
