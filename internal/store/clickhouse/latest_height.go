package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

const latestHeightQuery = `
SELECT count() AS blocks, coalesce(max(height), toUInt32(0)) AS max_height
FROM ledger_blocks`

// LatestHeight returns the highest stored height, or model.ErrNotFound when no block is stored.
func (r *Repository) LatestHeight(ctx context.Context) (height uint32, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_height", missIsSuccess(err), start)
	}()

	rows, err := r.conn.Query(ctx, latestHeightQuery)
	if err != nil {
		return 0, fmt.Errorf("query latest height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("latest height not found")
	}

	var blocks uint64
	if err = rows.Scan(&blocks, &height); err != nil {
		return 0, fmt.Errorf("scan latest height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate latest height: %w", err)
	}
	if blocks == 0 {
		return 0, fmt.Errorf("latest height: %w", model.ErrNotFound)
	}

	return height, nil
}
