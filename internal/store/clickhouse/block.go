package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

const (
	blockByHeightQuery = `
SELECT payload
FROM ledger_blocks FINAL
WHERE height = ?
LIMIT 1`

	blockByHashQuery = `
SELECT payload
FROM ledger_blocks FINAL
WHERE hash = ?
LIMIT 1`
)

// BlockByHeight loads the block stored at height.
func (r *Repository) BlockByHeight(ctx context.Context, height uint32) (model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_height", missIsSuccess(err), start)
	}()

	block, err := r.queryBlock(ctx, blockByHeightQuery, height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, err)
	}
	return block, nil
}

// BlockByHash loads the block with the given hash.
func (r *Repository) BlockByHash(ctx context.Context, hash model.Hash) (model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_hash", missIsSuccess(err), start)
	}()

	block, err := r.queryBlock(ctx, blockByHashQuery, hash.String())
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s: %w", hash, err)
	}
	return block, nil
}

func (r *Repository) queryBlock(ctx context.Context, query string, arg any) (block model.Block, err error) {
	rows, err := r.conn.Query(ctx, query, arg)
	if err != nil {
		return model.Block{}, fmt.Errorf("query block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Block{}, fmt.Errorf("iterate block: %w", err)
		}
		return model.Block{}, model.ErrNotFound
	}

	var payload string
	if err = rows.Scan(&payload); err != nil {
		return model.Block{}, fmt.Errorf("scan block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Block{}, fmt.Errorf("iterate block: %w", err)
	}

	block, err = codec.Decode[model.Block]([]byte(payload))
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

func missIsSuccess(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	return err
}
