package cricbuzz

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

// Matches assembles MatchInfo for every match in the live list, in list order.
// A failure stops work on later matches. The error returned is the one for the
// earliest failing match in list order, as a sequential walk would report it.
func (c *Client) Matches(ctx context.Context) ([]*MatchInfo, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.Matches")
	defer span.End()

	var envelope liveMatchesEnvelope
	if _, err := c.crawlInto(ctx, c.liveMatchesURL(), &envelope); err != nil {
		return nil, fmt.Errorf("live matches: %w", err)
	}
	if len(envelope.Matches) == 0 {
		return []*MatchInfo{}, nil
	}

	ids := make([]string, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		ids = append(ids, item.MatchID.String())
	}

	workerCount := c.matchWorkers
	if workerCount > len(ids) {
		workerCount = len(ids)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]*MatchInfo, len(ids))
	errs := make([]error, len(ids))
	cancels := make([]context.CancelFunc, len(ids))
	failedAt := len(ids)
	var (
		mu      sync.Mutex
		workers sync.WaitGroup
	)
	// fail stops every match after i. Earlier matches keep running so that
	// an earlier failure still wins.
	fail := func(i int, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs[i] = err
		if i >= failedAt {
			return
		}
		failedAt = i
		for j := i + 1; j < len(cancels); j++ {
			if cancels[j] != nil {
				cancels[j]()
			}
		}
	}

	for i, id := range ids {
		if ctx.Err() != nil {
			break
		}
		taskCtx, taskCancel := context.WithCancel(ctx)
		mu.Lock()
		abandoned := i > failedAt
		if !abandoned {
			cancels[i] = taskCancel
		}
		mu.Unlock()
		if abandoned {
			taskCancel()
			break
		}

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			defer taskCancel()
			if taskCtx.Err() != nil {
				return
			}

			var catcher panics.Catcher
			catcher.Try(func() {
				info, err := c.MatchInfo(taskCtx, id)
				if err != nil {
					fail(i, err)
					return
				}
				results[i] = info
			})
			if recovered := catcher.Recovered(); recovered != nil {
				fail(i, crerr.Wrapf(recovered.AsError(), "match info match_id=%s panicked", id))
			}
		}); err != nil {
			workers.Done()
			taskCancel()
			fail(i, fmt.Errorf("submit match_id=%s to worker pool: %w", id, err))
			break
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failedAt < len(ids) {
		c.logger.WarnContext(ctx, "live matches aggregation aborted", "error", errs[failedAt])
		return nil, errs[failedAt]
	}
	return results, nil
}
