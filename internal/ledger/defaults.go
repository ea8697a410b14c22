package ledger

import "github.com/goodnatureofminers/shieldledger-backend/internal/model"

const (
	defaultDecryptWorkers = 8
	defaultScanChunkSize  = 256

	maxBlockTransactions = 1 << model.TransactionsTreeDepth
	maxBlockCommitments  = 1 << model.BlockTreeDepth
)
