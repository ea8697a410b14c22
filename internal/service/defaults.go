package service

import "time"

const (
	defaultQueueCapacity = 64

	defaultBlockInterval = 10 * time.Second
)
