package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseMany parses several independent top-level targets concurrently, one
// session per target. Each parse stays purely sequential internally; only
// whole targets run in parallel. Results come back in target order.
func ParseMany(ctx context.Context, targets []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Parse(target, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
