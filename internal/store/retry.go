// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

const maxAttempts = 3

// retryDelay is the pause before the second attempt; it doubles afterwards.
var retryDelay = 100 * time.Millisecond

// withRetry runs fn until it succeeds, returns an error the database does not
// classify as [Retryable], ctx is done, or maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	delay := retryDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || attempt == maxAttempts || db.classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
}
