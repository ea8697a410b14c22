//go:build zmq

package main

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

const hashBlockTopic = "hashblock"

// blockPublisher sends [topic, block hash, little-endian sequence] for every
// accepted block, in the framing bitcoind uses for its hashblock feed.
type blockPublisher struct {
	logger *zap.Logger

	mu       sync.Mutex
	pub      *zmq4.Socket
	sequence uint32
}

func startBlockPublisher(addr string, logger *zap.Logger) (*blockPublisher, error) {
	p := &blockPublisher{logger: logger.Named("zmq")}
	if addr == "" {
		return p, nil
	}

	pub, err := zmq4.NewSocket(zmq4.PUB)
	if err != nil {
		return nil, fmt.Errorf("create zmq socket: %w", err)
	}
	if err := pub.Bind(addr); err != nil {
		pub.Close()
		return nil, fmt.Errorf("bind zmq %s: %w", addr, err)
	}
	p.pub = pub
	p.logger.Info("publishing block notifications", zap.String("addr", addr))
	return p, nil
}

func (p *blockPublisher) Publish(block model.Block) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pub == nil {
		return
	}

	hash := block.Hash()
	seq := make([]byte, 4)
	binary.LittleEndian.PutUint32(seq, p.sequence)
	p.sequence++

	if _, err := p.pub.SendMessage(hashBlockTopic, hash[:], seq); err != nil {
		p.logger.Warn("zmq send failed", zap.Stringer("hash", hash), zap.Error(err))
	}
}

func (p *blockPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pub == nil {
		return nil
	}
	err := p.pub.Close()
	p.pub = nil
	return err
}
