//go:build !zmq

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

type blockPublisher struct{}

func startBlockPublisher(addr string, _ *zap.Logger) (*blockPublisher, error) {
	if addr != "" {
		return nil, errors.New("zmq-pub-addr requires a build with the zmq tag")
	}
	return &blockPublisher{}, nil
}

func (*blockPublisher) Publish(model.Block) {}

func (*blockPublisher) Close() error { return nil }
