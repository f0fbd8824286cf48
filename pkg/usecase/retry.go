package usecase

import (
	"context"
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// RetryPolicy re-attempts only conflict and transient failures, with a
// fixed wait between attempts and a hard attempt ceiling. Auth and
// not-found failures abort on the first occurrence.
//
// The function given to Do must re-observe remote state itself on each
// call: the policy never replays memoized state, it only re-runs fn.
type RetryPolicy struct {
	Wait        time.Duration
	MaxAttempts int
}

var DefaultRetryPolicy = RetryPolicy{
	Wait:        3 * time.Second,
	MaxAttempts: 5,
}

func (p RetryPolicy) Validate() error {
	if p.Wait <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "retry wait must be positive", goerr.V("wait", p.Wait))
	}
	if p.MaxAttempts < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "retry attempts must be at least 1", goerr.V("attempts", p.MaxAttempts))
	}
	return nil
}

// Do runs fn until it succeeds, fails with a non-retryable error, or
// the attempt ceiling is hit. The ceiling counts executions of fn, so
// MaxAttempts=1 means no retry at all.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !types.Retryable(err) {
			return err
		}
		if attempt >= p.MaxAttempts {
			return goerr.Wrap(err, "retry attempts exhausted",
				goerr.V("attempts", attempt))
		}

		logging.From(ctx).Warn("attempt failed, retrying",
			"attempt", attempt,
			"maxAttempts", p.MaxAttempts,
			"wait", p.Wait.String(),
			"error", err,
		)

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "canceled while waiting to retry")
		case <-time.After(p.Wait):
		}
	}
}
