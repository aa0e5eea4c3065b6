// Package ga implements the island-model genetic algorithm search:
// each Worker owns an independent population and RNG, periodically
// publishing its best chromosome to a shared GlobalBest and
// PersonalBestPool so islands cross-pollinate without sharing mutable
// state directly.
package ga

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/r3b0rn/jsspsolve/internal/chromosome"
	"github.com/r3b0rn/jsspsolve/internal/jsp"
)

// Worker runs one island's generation loop against a fixed Instance.
// A Worker owns its population, RNG and chromosome.Decoder; none of
// it is shared with any other Worker — only GlobalBest and
// PersonalBestPool cross island boundaries, and both do so under
// their own locks.
type Worker struct {
	Cfg  Config
	Inst *jsp.Instance
	Rng  *rand.Rand

	GBest *GlobalBest
	Pool  *PersonalBestPool

	// Evaluations and Generations are updated only by the goroutine
	// running Run and are safe to read afterwards — the orchestrator
	// reads them once errgroup.Wait has joined every worker.
	Evaluations int
	Generations int
}

// New returns a Worker, validating cfg and requiring non-nil
// dependencies.
func New(cfg Config, inst *jsp.Instance, rng *rand.Rand, gbest *GlobalBest, pool *PersonalBestPool) (*Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, fmt.Errorf("ga: instance must not be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("ga: rng must not be nil")
	}
	if gbest == nil {
		return nil, fmt.Errorf("ga: global best must not be nil")
	}
	if pool == nil {
		return nil, fmt.Errorf("ga: personal best pool must not be nil")
	}
	return &Worker{Cfg: cfg, Inst: inst, Rng: rng, GBest: gbest, Pool: pool}, nil
}

// Run executes the generation loop until ctx is done (or, if
// Cfg.MaxGenerations is nonzero, until that many generations have
// passed). It returns ctx.Err() on cancellation and nil on reaching
// MaxGenerations; either way GBest holds this worker's contribution.
func (w *Worker) Run(ctx context.Context) error {
	decoder := chromosome.NewDecoder(w.Inst)
	pop := w.Cfg.Population

	curr := make([]chromosome.Chromosome, pop)
	next := make([]chromosome.Chromosome, pop)
	scoresCurr := make([]int, pop)
	scoresNext := make([]int, pop)

	for i := range curr {
		curr[i] = chromosome.EncodeFromInstance(w.Inst, w.Rng)
		scoresCurr[i] = decoder.MustMakespan(curr[i])
	}

	idxs := make([]int, pop)
	for i := range idxs {
		idxs[i] = i
	}

	evaluations := pop
	generation := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.Cfg.MaxGenerations != 0 && generation >= w.Cfg.MaxGenerations {
			return nil
		}

		sort.Slice(idxs, func(i, j int) bool { return scoresCurr[idxs[i]] < scoresCurr[idxs[j]] })

		bestIdx := idxs[0]
		if sol, err := decoder.Decode(curr[bestIdx]); err == nil {
			w.GBest.TryUpdate(sol)
		}
		w.Pool.TryInsert(curr[bestIdx], scoresCurr[bestIdx])

		write := 0
		for e := 0; e < w.Cfg.Elite; e++ {
			src := idxs[e]
			next[write] = curr[src].Clone()
			scoresNext[write] = scoresCurr[src]
			write++
		}

		// Drop the worst DropWorst from the breeding stock, then splice
		// in every current shared personal best: immigration, spec
		// §4.F. The survivors (idxs[:pop-DropWorst]) remain the
		// tournament-selection pool below regardless of how many
		// immigrants just filled slots in next.
		breedingPool := idxs[:pop-w.Cfg.DropWorst]
		for _, immigrant := range w.Pool.All() {
			if write >= pop {
				break
			}
			next[write] = immigrant
			scoresNext[write] = decoder.MustMakespan(immigrant)
			evaluations++
			write++
		}

		for write < pop {
			switch {
			case w.Rng.Float64() < w.Cfg.MutationRate:
				p := TournamentSelectAmong(breedingPool, scoresCurr, w.Cfg.TournamentSize, w.Rng)
				child := BestOfPermutationMutation(curr[p].Clone(), decoder.MustMakespan, w.Rng)
				next[write] = child
				scoresNext[write] = decoder.MustMakespan(child)
				evaluations++
				write++

			case w.Rng.Float64() < w.Cfg.CrossoverRate:
				p1 := TournamentSelectAmong(breedingPool, scoresCurr, w.Cfg.TournamentSize, w.Rng)
				p2 := TournamentSelectAmong(breedingPool, scoresCurr, w.Cfg.TournamentSize, w.Rng)

				var c1, c2 chromosome.Chromosome
				if split, ok := CrossoverSplit(w.Inst.NumJobs(), w.Rng); ok {
					c1, c2 = PartitionCrossover(curr[p1], curr[p2], split)
				} else {
					c1, c2 = curr[p1].Clone(), curr[p2].Clone()
				}

				next[write] = c1
				scoresNext[write] = decoder.MustMakespan(c1)
				evaluations++
				write++

				if write < pop {
					next[write] = c2
					scoresNext[write] = decoder.MustMakespan(c2)
					evaluations++
					write++
				}

			default:
				// Neither draw fired: this iteration of the repeat-until-P
				// loop produces nothing, per spec §4.F/§9 — the two
				// branch probabilities are independent draws, so the
				// joint "no child this iteration" case has nonzero
				// probability and the loop simply draws again.
			}
		}

		curr, next = next, curr
		scoresCurr, scoresNext = scoresNext, scoresCurr
		generation++
		w.Evaluations = evaluations
		w.Generations = generation
	}
}
