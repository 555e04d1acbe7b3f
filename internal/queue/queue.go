// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue publishes accepted registrations to downstream consumers.
package queue

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/models"
)

//go:generate mockgen -source=queue.go -destination=../mock/queue_mock.go -package=mock

// Publisher hands an accepted registration to a queue.
type Publisher interface {
	Publish(ctx context.Context, registration models.Registration) error
	Close() error
}

// pusher is the subset of the redis client the publisher needs.
type pusher interface {
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	Close() error
}

// RedisPublisher appends registrations as JSON to a Redis list, to be
// consumed with BLPOP.
type RedisPublisher struct {
	client pusher
	list   string
	logger *logger.Logger
}

// NewPublisher returns a [RedisPublisher] when cfg.Address is set and a
// no-op publisher otherwise.
func NewPublisher(cfg config.Redis, logger *logger.Logger) Publisher {
	if cfg.Address == "" {
		logger.Info().Msg("redis address is not set, registration events are not published")
		return Nop{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Address,
	})

	return newRedisPublisher(rdb, cfg.List, logger)
}

func newRedisPublisher(client pusher, list string, logger *logger.Logger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		list:   list,
		logger: logger,
	}
}

// Publish implements [Publisher].
func (p *RedisPublisher) Publish(ctx context.Context, registration models.Registration) error {
	jsonData, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("failed to marshal registration: %w", err)
	}

	if err = p.client.RPush(ctx, p.list, jsonData).Err(); err != nil {
		return fmt.Errorf("failed to enqueue registration: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("list", p.list).
		Str("registration_id", registration.ID).
		Msg("registration published")

	return nil
}

// Close closes the redis client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Nop discards registrations.
type Nop struct{}

func (Nop) Publish(context.Context, models.Registration) error { return nil }
func (Nop) Close() error                                       { return nil }
