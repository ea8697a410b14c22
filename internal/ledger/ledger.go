// Package ledger holds the canonical chain view: confirmed blocks and the indices
// derived from them, the memory pool, state paths and record discovery.
//
// A Ledger is not safe for concurrent use on its own. Callers serialize writers
// against readers; concurrent readers are fine.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/merkle"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/internal/store"
)

type location struct {
	height uint32
	index  uint32
}

type Ledger struct {
	store store.ChainStore

	latestHeight uint32
	latestHash   model.Hash

	// derived from confirmed blocks
	transactions map[model.Hash]location
	commitments  map[model.Field]location
	serials      map[model.Field]model.Hash
	outputs      []model.Output
	state        *merkle.Tree

	pool *MemoryPool

	decryptWorkers int
	scanChunkSize  int
}

type Option func(*Ledger)

// WithDecryptWorkers bounds the goroutines used by record discovery.
func WithDecryptWorkers(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.decryptWorkers = n
		}
	}
}

// WithScanChunkSize sets how many ciphertexts one discovery task tries at a time.
func WithScanChunkSize(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.scanChunkSize = n
		}
	}
}

// Open loads the ledger from s. An empty store is initialized with genesis; otherwise
// the stored chain is replayed from height 0 to rebuild the indices, and its first
// block must be genesis.
func Open(ctx context.Context, s store.ChainStore, genesis model.Block, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:          s,
		transactions:   make(map[model.Hash]location),
		commitments:    make(map[model.Field]location),
		serials:        make(map[model.Field]model.Hash),
		state:          merkle.New(model.GlobalTreeDepth),
		pool:           NewMemoryPool(),
		decryptWorkers: defaultDecryptWorkers,
		scanChunkSize:  defaultScanChunkSize,
	}
	for _, opt := range opts {
		opt(l)
	}

	latest, err := s.LatestHeight(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		if err := l.AddNextBlock(ctx, genesis); err != nil {
			return nil, fmt.Errorf("write genesis: %w", err)
		}
		return l, nil
	case err != nil:
		return nil, fmt.Errorf("read latest height: %w", err)
	}

	for height := uint32(0); ; height++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		block, err := s.BlockByHeight(ctx, height)
		if err != nil {
			return nil, fmt.Errorf("replay block %d: %w", height, err)
		}
		if height == 0 && block.Hash() != genesis.Hash() {
			return nil, fmt.Errorf("%w: stored genesis %s differs from configured %s", model.ErrInvalidBlock, block.Hash(), genesis.Hash())
		}
		if err := l.checkBlock(block); err != nil {
			return nil, fmt.Errorf("replay block %d: %w", height, err)
		}
		if err := l.index(block); err != nil {
			return nil, fmt.Errorf("replay block %d: %w", height, err)
		}
		if height == latest {
			break
		}
	}
	return l, nil
}

// LatestHeight returns the height of the newest confirmed block.
func (l *Ledger) LatestHeight() uint32 { return l.latestHeight }

// LatestHash returns the hash of the newest confirmed block.
func (l *Ledger) LatestHash() model.Hash { return l.latestHash }

// LatestBlock loads the newest confirmed block from the chain store.
func (l *Ledger) LatestBlock(ctx context.Context) (model.Block, error) {
	return l.GetBlock(ctx, l.latestHeight)
}

// GetBlock loads the confirmed block at height.
func (l *Ledger) GetBlock(ctx context.Context, height uint32) (model.Block, error) {
	if l.state.Len() == 0 || height > l.latestHeight {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, model.ErrNotFound)
	}
	block, err := l.store.BlockByHeight(ctx, height)
	if err != nil {
		return model.Block{}, notFound(err)
	}
	return block, nil
}

// GetTransactions returns the transactions of the block at height in block order.
func (l *Ledger) GetTransactions(ctx context.Context, height uint32) ([]model.Transaction, error) {
	block, err := l.GetBlock(ctx, height)
	if err != nil {
		return nil, err
	}
	if block.Transactions == nil {
		return []model.Transaction{}, nil
	}
	return block.Transactions, nil
}

// GetTransaction returns a confirmed transaction. Pooled transactions are not visible here.
func (l *Ledger) GetTransaction(ctx context.Context, id model.Hash) (model.Transaction, error) {
	loc, ok := l.transactions[id]
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, model.ErrNotFound)
	}
	block, err := l.GetBlock(ctx, loc.height)
	if err != nil {
		return model.Transaction{}, err
	}
	if int(loc.index) >= len(block.Transactions) || block.Transactions[loc.index].ID() != id {
		return model.Transaction{}, fmt.Errorf("transaction %s: stored block %d does not hold it: %w", id, loc.height, model.ErrNotFound)
	}
	return block.Transactions[loc.index], nil
}

// MemoryPoolSize returns the number of pooled transactions.
func (l *Ledger) MemoryPoolSize() int { return l.pool.Len() }

// MemoryPoolTransactions returns the pooled transactions in arrival order.
func (l *Ledger) MemoryPoolTransactions() []model.Transaction { return l.pool.Transactions() }

// AddToMemoryPool admits tx into the pool and returns its id. The transaction is
// rejected with model.ErrDuplicate when its id is already pooled or confirmed or one
// of its output commitments already exists, with model.ErrDoubleSpend when one of
// its serial numbers repeats within it, is pooled or is spent on chain, and with
// model.ErrInvalidTransaction when it has neither inputs nor outputs.
func (l *Ledger) AddToMemoryPool(tx model.Transaction) (model.Hash, error) {
	id := tx.ID()
	if err := l.checkTransaction(tx, id, newBatch(), true); err != nil {
		return id, err
	}
	l.pool.insert(id, tx)
	return id, nil
}

// batch collects values seen earlier in the same candidate or block.
type batch struct {
	ids         map[model.Hash]struct{}
	serials     map[model.Field]struct{}
	commitments map[model.Field]struct{}
}

func newBatch() *batch {
	return &batch{
		ids:         make(map[model.Hash]struct{}),
		serials:     make(map[model.Field]struct{}),
		commitments: make(map[model.Field]struct{}),
	}
}

func (l *Ledger) checkTransaction(tx model.Transaction, id model.Hash, seen *batch, withPool bool) error {
	if len(tx.Inputs) == 0 && len(tx.Outputs) == 0 {
		return fmt.Errorf("transaction %s: %w: no inputs and no outputs", id, model.ErrInvalidTransaction)
	}

	_, confirmed := l.transactions[id]
	_, repeated := seen.ids[id]
	if confirmed || repeated || (withPool && l.pool.Contains(id)) {
		return fmt.Errorf("transaction %s: %w", id, model.ErrDuplicate)
	}
	seen.ids[id] = struct{}{}

	for _, in := range tx.Inputs {
		sn := in.SerialNumber
		_, spent := l.serials[sn]
		_, repeated := seen.serials[sn]
		if spent || repeated || (withPool && l.pool.spends(sn)) {
			return fmt.Errorf("transaction %s: serial number %s: %w", id, sn, model.ErrDoubleSpend)
		}
		seen.serials[sn] = struct{}{}
	}

	for _, out := range tx.Outputs {
		c := out.Commitment
		_, exists := l.commitments[c]
		_, repeated := seen.commitments[c]
		if exists || repeated || (withPool && l.pool.creates(c)) {
			return fmt.Errorf("transaction %s: commitment %s: %w", id, c, model.ErrDuplicate)
		}
		seen.commitments[c] = struct{}{}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrNotFound, err)
}
