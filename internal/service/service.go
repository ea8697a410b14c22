// Package service is the ledger's concurrency boundary. Reads run against the
// shared ledger under a read lock; writes are queued in arrival order and applied
// one at a time by the goroutine running Run, under the write lock.
//
// Submit acknowledges that a write was queued, not that it was applied. Rejected
// writes are logged by the consumer and never reported back to the submitter.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type envelope struct {
	id  string
	req Request
}

// Service owns the ledger and serializes access to it.
type Service struct {
	logger  *zap.Logger
	metrics Metrics

	mu     sync.RWMutex
	ledger Ledger

	requests chan envelope
	done     chan struct{}
	started  atomic.Bool

	onBlock []func(model.Block)
}

// NewService wraps l. A non-positive capacity selects the default queue size.
func NewService(l Ledger, metrics Metrics, logger *zap.Logger, capacity int) (*Service, error) {
	if l == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("service metrics is required")
	}
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &Service{
		logger:   logger,
		metrics:  metrics,
		ledger:   l,
		requests: make(chan envelope, capacity),
		done:     make(chan struct{}),
	}, nil
}

// OnBlock registers fn to be called by the consumer after each confirmed block.
// It must be called before Run.
func (s *Service) OnBlock(fn func(model.Block)) {
	s.onBlock = append(s.onBlock, fn)
}

// Submit queues req. It blocks while the queue is full and fails with
// model.ErrQueueClosed once the consumer has stopped.
func (s *Service) Submit(ctx context.Context, req Request) error {
	select {
	case <-s.done:
		return model.ErrQueueClosed
	default:
	}

	env := envelope{id: uuid.NewString(), req: req}
	select {
	case s.requests <- env:
		s.metrics.SetQueueDepth(len(s.requests))
		s.logger.Debug("request queued", zap.String("request_id", env.id), zap.Stringer("kind", req.Kind))
		return nil
	case <-s.done:
		return model.ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Running reports whether the consumer is applying requests.
func (s *Service) Running() bool {
	if !s.started.Load() {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Done is closed when the consumer stops.
func (s *Service) Done() <-chan struct{} { return s.done }

// Run consumes the queue until ctx is canceled. It may be called once.
func (s *Service) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("service consumer already started")
	}
	defer s.stop()

	s.logger.Info("consumer started", zap.Int("queue_capacity", cap(s.requests)))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-s.requests:
			s.metrics.SetQueueDepth(len(s.requests))
			s.apply(ctx, env)
		}
	}
}

func (s *Service) stop() {
	close(s.done)
	dropped := 0
	for {
		select {
		case env := <-s.requests:
			dropped++
			s.logger.Warn("dropping queued request", zap.String("request_id", env.id), zap.Stringer("kind", env.req.Kind))
		default:
			s.metrics.SetQueueDepth(0)
			s.logger.Info("consumer stopped", zap.Int("dropped", dropped))
			return
		}
	}
}

func (s *Service) apply(ctx context.Context, env envelope) {
	started := time.Now()
	logger := s.logger.With(zap.String("request_id", env.id), zap.Stringer("kind", env.req.Kind))

	var (
		confirmed *model.Block
		err       error
	)
	s.mu.Lock()
	switch env.req.Kind {
	case TransactionBroadcast:
		err = s.broadcast(logger, env.req.Transaction)
	case BlockAdvance:
		err = s.advance(ctx, logger, env.req.Block)
		if err == nil {
			confirmed = &env.req.Block
		}
	case BlockProposal:
		var block model.Block
		block, err = s.propose(ctx, logger, env.req.Timestamp, env.req.Limit)
		if err == nil {
			confirmed = &block
		}
	default:
		err = fmt.Errorf("unknown request kind %d", int(env.req.Kind))
	}
	s.mu.Unlock()

	s.metrics.ObserveRequest(env.req.Kind.String(), err, started)
	if err != nil {
		logger.Warn("request rejected", zap.Error(err))
		return
	}
	if confirmed != nil {
		for _, fn := range s.onBlock {
			fn(*confirmed)
		}
	}
}

func (s *Service) broadcast(logger *zap.Logger, tx model.Transaction) error {
	id, err := s.ledger.AddToMemoryPool(tx)
	if err != nil {
		return fmt.Errorf("add transaction %s to the memory pool: %w", id, err)
	}
	logger.Info("added transaction to the memory pool",
		zap.Stringer("txid", id),
		zap.Int("pool_size", s.ledger.MemoryPoolSize()),
	)
	return nil
}

func (s *Service) advance(ctx context.Context, logger *zap.Logger, block model.Block) error {
	if err := s.ledger.AddNextBlock(ctx, block); err != nil {
		return fmt.Errorf("advance to block %d: %w", block.Height(), err)
	}
	logger.Info("advanced to block",
		zap.Uint32("height", block.Height()),
		zap.Stringer("hash", block.Hash()),
		zap.Int("transactions", len(block.Transactions)),
	)
	return nil
}

func (s *Service) propose(ctx context.Context, logger *zap.Logger, timestamp int64, limit int) (model.Block, error) {
	block, err := s.ledger.ProposeNextBlock(timestamp, limit)
	if err != nil {
		return model.Block{}, fmt.Errorf("propose block: %w", err)
	}
	if err := s.ledger.AddNextBlock(ctx, block); err != nil {
		return model.Block{}, fmt.Errorf("confirm proposed block %d: %w", block.Height(), err)
	}
	logger.Info("sealed block",
		zap.Uint32("height", block.Height()),
		zap.Stringer("hash", block.Hash()),
		zap.Int("transactions", len(block.Transactions)),
		zap.Int("pool_size", s.ledger.MemoryPoolSize()),
	)
	return block, nil
}

func (s *Service) LatestHeight() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.LatestHeight()
}

func (s *Service) LatestHash() model.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.LatestHash()
}

func (s *Service) MemoryPoolSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.MemoryPoolSize()
}

func (s *Service) MemoryPoolTransactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.MemoryPoolTransactions()
}

func (s *Service) LatestBlock(ctx context.Context) (model.Block, error) {
	return read(s, "latest_block", func() (model.Block, error) {
		return s.ledger.LatestBlock(ctx)
	})
}

func (s *Service) GetBlock(ctx context.Context, height uint32) (model.Block, error) {
	return read(s, "get_block", func() (model.Block, error) {
		return s.ledger.GetBlock(ctx, height)
	})
}

func (s *Service) GetTransactions(ctx context.Context, height uint32) ([]model.Transaction, error) {
	return read(s, "get_transactions", func() ([]model.Transaction, error) {
		return s.ledger.GetTransactions(ctx, height)
	})
}

func (s *Service) GetTransaction(ctx context.Context, id model.Hash) (model.Transaction, error) {
	return read(s, "get_transaction", func() (model.Transaction, error) {
		return s.ledger.GetTransaction(ctx, id)
	})
}

func (s *Service) StatePath(ctx context.Context, commitment model.Field) (model.StatePath, error) {
	return read(s, "state_path", func() (model.StatePath, error) {
		return s.ledger.StatePath(ctx, commitment)
	})
}

func (s *Service) FindRecords(ctx context.Context, viewKey account.ViewKey, filter ledger.RecordsFilter) (ledger.Records, error) {
	return read(s, "find_records", func() (ledger.Records, error) {
		return s.ledger.FindRecords(ctx, viewKey, filter)
	})
}

// read runs fn under the shared lock for the duration of one call.
func read[T any](s *Service, operation string, fn func() (T, error)) (T, error) {
	started := time.Now()
	s.mu.RLock()
	v, err := fn()
	s.mu.RUnlock()
	s.metrics.ObserveRead(operation, err, started)
	return v, err
}
