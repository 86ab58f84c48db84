package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hzach/Cellery/rules"
)

// NextGeneration computes the next generation of the grid under the given
// rule, splitting rows across CPUs. The receiver is left unchanged; the
// result comes from the pool when one is provided.
func (g *Grid) NextGeneration(rule rules.Rule, pool *GridPool) (*Grid, error) {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.height, g.width)
	} else {
		next, _ = NewGrid(g.height, g.width)
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for w := 0; w < numWorkers; w++ {
		var (
			startRow = w * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for i := startRow; i < endRow; i++ {
				for j := 0; j < g.width; j++ {
					neighbors, err := g.Moore(i, j)
					if err != nil {
						return err
					}
					if rule.Apply(neighbors, g.cells[g.index(i, j)].IsAlive()) {
						next.cells[next.index(i, j)] = Live
					}
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if pool != nil {
			pool.Put(next)
		}
		return nil, err
	}

	return next, nil
}
