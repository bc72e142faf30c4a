package transport

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy is a retry policy applied at the transport boundary. Failed
// requests are reissued up to MaxRetries more times with the delay
// doubling from BaseDelay, but only while Retryable accepts the error.
type Policy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	Retryable  func(error) bool
}

// DefaultPolicy retries server-side transaction aborts twice, starting at
// one second between attempts.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 2,
		BaseDelay:  time.Second,
		Retryable:  IsAbortedTransaction,
	}
}

// IsAbortedTransaction reports whether err is a ServerError caused by the
// backend's known-transient database condition. The check also covers the
// "current transaction is aborted" phrasing.
func IsAbortedTransaction(err error) bool {
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return strings.Contains(serverErr.Message, "transaction is aborted")
}

// Do runs op, retrying per the policy. Non-retryable errors propagate
// immediately and unretried.
func (p Policy) Do(ctx context.Context, op func() error) error {
	if p.Retryable == nil || p.MaxRetries == 0 {
		return op()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx))
}
