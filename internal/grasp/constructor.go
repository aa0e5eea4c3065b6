// Package grasp implements the greedy-randomised adaptive constructor:
// a single-pass build of a feasible Solution that, at every step,
// picks uniformly among the best few ready candidates on whichever
// machine is least loaded rather than always taking the single best
// one, so repeated calls explore a neighbourhood of good schedules
// instead of returning the same greedy one every time.
package grasp

import (
	"container/heap"
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/r3b0rn/jsspsolve/internal/schedule"
)

// Constructor builds Solutions for a fixed Instance using a fixed
// Config. Like a chromosome.Decoder, a Constructor must never be
// shared across goroutines: Construct reuses no state across calls,
// but the *rand.Rand it draws from is not itself safe for concurrent
// use.
type Constructor struct {
	cfg Config
	rng *rand.Rand
}

// New returns a Constructor, validating cfg and requiring a non-nil
// random source.
func New(cfg Config, rng *rand.Rand) (*Constructor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("grasp: rng must not be nil")
	}
	return &Constructor{cfg: cfg, rng: rng}, nil
}

// Construct runs the GRASP build for inst, returning a feasible
// Solution. It checks ctx once per loop iteration, the same
// per-iteration cancellation check every solver in this repository
// performs.
func (c *Constructor) Construct(ctx context.Context, inst *jsp.Instance) (*schedule.Solution, error) {
	machines := make(map[jsp.MachineID]*machineState, inst.NumMachines())
	for _, id := range inst.MachineIDs() {
		machines[id] = &machineState{machineID: id}
	}

	// waiting holds every step whose predecessor has not finished yet,
	// keyed by the (job, step) it will become once ready.
	waiting := make(map[jsp.TaskID]readyStep)
	remaining := 0
	totalDuration := 0

	for _, job := range inst.Jobs() {
		for _, step := range job.Steps() {
			remaining++
			totalDuration += step.Duration
			rs := readyStep{
				jobID:     step.JobID,
				stepID:    step.StepID,
				machineID: step.MachineID,
				duration:  step.Duration,
			}
			if step.StepID == 0 {
				ms := machines[step.MachineID]
				ms.ready = append(ms.ready, rs)
			} else {
				waiting[jsp.TaskID{Job: step.JobID, Step: step.StepID}] = rs
			}
		}
	}

	q := make(machineQueue, 0, len(machines))
	for _, ms := range machines {
		q = append(q, ms)
	}
	heap.Init(&q)

	sol := schedule.New()

	// maxIterations is the safety bound spec §4.D/§7 call for. Every
	// iteration either schedules a step, drops a dead machine, or bumps
	// a starved machine's plan time by LivelockBump. A starved machine
	// keeps being bumped while another machine is busy with a long
	// step, so the bound grows with the total step duration (counted
	// in LivelockBump units) as well as with the step and machine
	// counts; hitting it means an internal invariant broke, not a slow
	// instance.
	maxIterations := (inst.TotalSteps() + inst.NumMachines()) * 8
	maxIterations += inst.NumMachines() * (totalDuration/c.cfg.LivelockBump + inst.TotalSteps())
	if maxIterations < 1000 {
		maxIterations = 1000
	}

	for iter := 0; q.Len() > 0; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if iter >= maxIterations {
			return nil, fmt.Errorf("grasp: construction exceeded safety bound of %d iterations with %d step(s) left unscheduled", maxIterations, remaining)
		}

		ms := heap.Pop(&q).(*machineState)

		if len(ms.ready) == 0 {
			if len(waiting) == 0 {
				// Nothing left can ever become ready for this
				// machine; drop it from the queue for good.
				continue
			}
			// A step this machine needs is still waiting on another
			// machine to finish. Push the plan time forward so the
			// queue surfaces machines that can unblock it, instead of
			// spinning on this one.
			ms.planTime += c.cfg.LivelockBump
			heap.Push(&q, ms)
			continue
		}

		selected, rest := selectCandidate(ms.ready, c.cfg.Alpha, c.rng)
		ms.ready = rest

		start := ms.currTime
		if selected.readyTime > start {
			start = selected.readyTime
		}
		end := start + selected.duration

		ms.currTime = end
		if end > ms.planTime {
			ms.planTime = end
		}

		sol.Insert(schedule.NewStepTask(selected.machineID, selected.duration, start, selected.jobID, selected.stepID))
		remaining--

		nextStep := jsp.TaskID{Job: selected.jobID, Step: selected.stepID + 1}
		if next, ok := waiting[nextStep]; ok {
			next.readyTime = end
			delete(waiting, nextStep)
			nm := machines[next.machineID]
			nm.ready = append(nm.ready, next)
		}

		if len(ms.ready) == 0 && len(waiting) == 0 {
			continue
		}
		heap.Push(&q, ms)
	}

	if remaining != 0 {
		return nil, fmt.Errorf("grasp: construction stalled with %d step(s) left unscheduled", remaining)
	}

	return sol, nil
}

// selectCandidate sorts ready by (ready time, duration) ascending —
// shortest, soonest-ready step first — computes k = floor(len(ready) *
// alpha), and draws a uniform index in [0, k], returning the chosen
// step and the remaining candidates. Alpha 0 always yields k = 0, the
// deterministic top-of-list pick spec §8 requires.
func selectCandidate(ready []readyStep, alpha float64, rng *rand.Rand) (readyStep, []readyStep) {
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].readyTime != ready[j].readyTime {
			return ready[i].readyTime < ready[j].readyTime
		}
		return ready[i].duration < ready[j].duration
	})

	k := int(float64(len(ready)) * alpha)
	if k > len(ready)-1 {
		k = len(ready) - 1
	}

	idx := rng.Intn(k + 1)
	selected := ready[idx]

	rest := make([]readyStep, 0, len(ready)-1)
	rest = append(rest, ready[:idx]...)
	rest = append(rest, ready[idx+1:]...)
	return selected, rest
}
