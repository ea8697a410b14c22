package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/clock"
	"go.uber.org/zap"
)

// Producer periodically asks the consumer to seal the memory pool into a block.
type Producer struct {
	logger   *zap.Logger
	queue    BlockQueue
	interval time.Duration
	limit    int
	clock    clock.Clock
}

// NewProducer builds a Producer submitting to queue every interval. A
// non-positive interval selects the default.
func NewProducer(queue BlockQueue, interval time.Duration, limit int, logger *zap.Logger) *Producer {
	if interval <= 0 {
		interval = defaultBlockInterval
	}
	return &Producer{
		logger:   logger,
		queue:    queue,
		interval: interval,
		limit:    limit,
		clock:    clock.System,
	}
}

// Run submits block proposals until ctx is canceled or the queue closes.
func (p *Producer) Run(ctx context.Context) error {
	p.logger.Info("block producer started", zap.Duration("interval", p.interval), zap.Int("limit", p.limit))
	for {
		if err := p.clock.Sleep(ctx, p.interval); err != nil {
			return err
		}
		if err := p.tick(ctx); err != nil {
			return err
		}
	}
}

func (p *Producer) tick(ctx context.Context) error {
	pooled := p.queue.MemoryPoolSize()
	if pooled == 0 {
		p.logger.Debug("memory pool empty; skipping block")
		return nil
	}
	if err := p.queue.Submit(ctx, ProposeBlock(p.clock.Now().Unix(), p.limit)); err != nil {
		p.logger.Warn("submit block proposal failed", zap.Error(err))
		return err
	}
	p.logger.Debug("block proposal submitted", zap.Int("pool_size", pooled))
	return nil
}
