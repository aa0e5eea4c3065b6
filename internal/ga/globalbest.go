package ga

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/r3b0rn/jsspsolve/internal/chromosome"
	"github.com/r3b0rn/jsspsolve/internal/schedule"
)

// GlobalBest is the cross-island best Solution found so far, shared by
// every worker under a single RWMutex. Readers (workers checking
// whether they should bother publishing) take the read lock; a writer
// re-checks under the write lock before replacing (double-checked
// update), since multiple workers may race to publish in the same
// instant.
type GlobalBest struct {
	mu       sync.RWMutex
	sol      *schedule.Solution
	makespan int
	logger   hclog.Logger
}

// NewGlobalBest seeds a GlobalBest with an initial Solution, typically
// the GRASP constructor's output.
func NewGlobalBest(initial *schedule.Solution) *GlobalBest {
	return &GlobalBest{sol: initial, makespan: initial.Makespan(), logger: hclog.NewNullLogger()}
}

// SetLogger attaches the logger TryUpdate emits its optional
// per-improvement line through (spec §6). A nil logger installs a null
// logger; a GlobalBest created via NewGlobalBest logs nothing until a
// logger is set.
func (g *GlobalBest) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
}

// Makespan returns the current best makespan.
func (g *GlobalBest) Makespan() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.makespan
}

// Solution returns a clone of the current best Solution.
func (g *GlobalBest) Solution() *schedule.Solution {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sol.Clone()
}

// TryUpdate replaces the global best with candidate if candidate's
// makespan is strictly lower, re-checking under the write lock so a
// slower-arriving worker never clobbers a better update that landed
// while it waited for the lock. Reports whether the replacement
// happened.
func (g *GlobalBest) TryUpdate(candidate *schedule.Solution) bool {
	ms := candidate.Makespan()

	g.mu.RLock()
	better := ms < g.makespan
	g.mu.RUnlock()
	if !better {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ms >= g.makespan {
		return false
	}
	g.logger.Debug("global best improved", "makespan", ms, "previous", g.makespan)
	g.makespan = ms
	g.sol = candidate.Clone()
	return true
}

type poolItem struct {
	chrom    chromosome.Chromosome
	makespan int
}

// PersonalBestPool is a bounded, shared pool of the best chromosomes
// any worker has produced, used for inter-island immigration. Every
// worker offers its generation-best each generation and splices the
// whole pool (via All) into its next generation, under the same
// RWMutex discipline as GlobalBest.
type PersonalBestPool struct {
	mu       sync.RWMutex
	capacity int
	items    []poolItem
}

// NewPersonalBestPool returns an empty pool bounded to capacity.
func NewPersonalBestPool(capacity int) *PersonalBestPool {
	return &PersonalBestPool{capacity: capacity}
}

// TryInsert offers a chromosome to the pool. While the pool has free
// capacity the chromosome is always kept; once full it replaces the
// current worst entry only if it is strictly better. Reports whether
// the chromosome was kept.
func (p *PersonalBestPool) TryInsert(c chromosome.Chromosome, makespan int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.items) < p.capacity {
		p.items = append(p.items, poolItem{chrom: c.Clone(), makespan: makespan})
		p.sortLocked()
		return true
	}

	worst := len(p.items) - 1
	if makespan >= p.items[worst].makespan {
		return false
	}
	p.items[worst] = poolItem{chrom: c.Clone(), makespan: makespan}
	p.sortLocked()
	return true
}

func (p *PersonalBestPool) sortLocked() {
	sort.Slice(p.items, func(i, j int) bool { return p.items[i].makespan < p.items[j].makespan })
}

// Sample returns a clone of a uniformly random pool member, or false
// if the pool is empty.
func (p *PersonalBestPool) Sample(rng *rand.Rand) (chromosome.Chromosome, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.items) == 0 {
		return nil, false
	}
	idx := rng.Intn(len(p.items))
	return p.items[idx].chrom.Clone(), true
}

// All returns a clone of every chromosome currently in the pool, best
// makespan first. Workers splice the whole pool into each new
// generation as immigration, per spec §4.F.
func (p *PersonalBestPool) All() []chromosome.Chromosome {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]chromosome.Chromosome, len(p.items))
	for i, it := range p.items {
		out[i] = it.chrom.Clone()
	}
	return out
}
