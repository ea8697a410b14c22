package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/pkg/safe"
)

const (
	insertTransactionsQuery = `
INSERT INTO ledger_transactions (
	txid,
	block_height,
	position,
	input_count,
	output_count
) VALUES`

	insertBlockQuery = `
INSERT INTO ledger_blocks (
	height,
	hash,
	previous_hash,
	timestamp,
	tx_count,
	payload
) VALUES`
)

// PutBlock stores the transaction index rows and then the block row. Reads go
// through ledger_blocks only, so a block becomes visible once its row is sent.
func (r *Repository) PutBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("put_block", err, start)
	}()

	payload, err := codec.Marshal(block)
	if err != nil {
		return fmt.Errorf("encode block %d: %w", block.Height(), err)
	}

	if len(block.Transactions) > 0 {
		if err = r.insertTransactions(ctx, block); err != nil {
			return err
		}
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return fmt.Errorf("block %d transactions: %w", block.Height(), err)
	}
	if err = batch.Append(
		block.Height(),
		block.Hash().String(),
		block.PreviousHash().String(),
		block.Timestamp(),
		txCount,
		string(payload),
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Height(), err)
	}
	return nil
}

func (r *Repository) insertTransactions(ctx context.Context, block model.Block) error {
	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for i, tx := range block.Transactions {
		index, err := safe.Uint32(i)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		inputs, err := safe.Uint32(len(tx.Inputs))
		if err != nil {
			return fmt.Errorf("transaction %d inputs: %w", i, err)
		}
		outputs, err := safe.Uint32(len(tx.Outputs))
		if err != nil {
			return fmt.Errorf("transaction %d outputs: %w", i, err)
		}
		if err := batch.Append(
			tx.ID().String(),
			block.Height(),
			index,
			inputs,
			outputs,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
