package lab

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// WalkEnsemble simulates runs independent walks concurrently. Run i is
// seeded with base+i, where base comes from the runner's seed policy.
func (r *Runner) WalkEnsemble(ctx context.Context, runs, steps int) ([]quantum.Path, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("ensemble: %w", &quantum.ParamError{Name: "runs", Value: runs, Wrapped: quantum.ErrParameterBounds})
	}
	if err := quantum.CheckSteps(steps); err != nil {
		return nil, fmt.Errorf("ensemble: %w", err)
	}
	base := r.seeder.Seed()
	logger := r.log.WithFields(log.Fields{"simulation": "neutrino", "runs": runs, "steps": steps, "seed": base})

	paths := make([]quantum.Path, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			paths[idx], errs[idx] = r.Neutrino.Simulate(steps, quantum.NewRand(base+int64(idx)))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	curve := MSDCurve(paths)
	logger.WithField("msd", curve[len(curve)-1]).Debug("ensemble finished")
	return paths, nil
}

// MSDCurve averages the squared distance from the origin across paths at
// every step. All paths must have the same length.
func MSDCurve(paths []quantum.Path) []float64 {
	if len(paths) == 0 {
		return nil
	}
	curve := make([]float64, paths[0].Len())
	for _, p := range paths {
		for i := range curve {
			curve[i] += float64(p.X[i]*p.X[i] + p.Y[i]*p.Y[i])
		}
	}
	for i := range curve {
		curve[i] /= float64(len(paths))
	}
	return curve
}
