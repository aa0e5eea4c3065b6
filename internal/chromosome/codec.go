package chromosome

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/r3b0rn/jsspsolve/internal/schedule"
)

// EncodeFromSolution collects every step-task in sol, sorts them
// ascending by (start_time, job_id, step_id) — the tie-break spec §9
// fixes for determinism, since the source's map-iteration tie-break is
// not reproducible — and emits their job ids in that order.
func EncodeFromSolution(sol *schedule.Solution) Chromosome {
	tasks := append([]schedule.Task(nil), sol.Tasks()...)
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.JobID != b.JobID {
			return a.JobID < b.JobID
		}
		return a.StepID < b.StepID
	})
	out := make(Chromosome, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.JobID)
	}
	return out
}

// EncodeFromInstance emits each job id |steps(job)| times and shuffles
// the result uniformly at random, the same initPermutation/
// shufflePermutation two-step the teacher's GA package uses to seed a
// population, generalised from a 0..n-1 permutation to one with
// per-job repetition.
func EncodeFromInstance(inst *jsp.Instance, rng *rand.Rand) Chromosome {
	c := make(Chromosome, 0, inst.TotalSteps())
	for _, job := range inst.Jobs() {
		for i := 0; i < job.NumSteps(); i++ {
			c = append(c, job.JobID)
		}
	}
	Shuffle(c, rng)
	return c
}

// Shuffle performs an in-place Fisher-Yates shuffle.
func Shuffle(c Chromosome, rng *rand.Rand) {
	for i := len(c) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		c[i], c[j] = c[j], c[i]
	}
}

// Decoder converts chromosomes into Solutions (or bare makespans) for a
// fixed Instance. It owns reusable scratch buffers sized once from the
// Instance, so repeated decodes in a GA inner loop do not reallocate.
// A Decoder must never be shared across goroutines.
type Decoder struct {
	inst *jsp.Instance

	jobIndex     map[jsp.JobID]int
	machineIndex map[jsp.MachineID]int

	machineEnd []int
	jobEnd     []int
	nextStep   []int
}

// NewDecoder builds a Decoder for inst.
func NewDecoder(inst *jsp.Instance) *Decoder {
	jobIDs := inst.JobIDs()
	machIDs := inst.MachineIDs()

	jobIndex := make(map[jsp.JobID]int, len(jobIDs))
	for i, id := range jobIDs {
		jobIndex[id] = i
	}
	machineIndex := make(map[jsp.MachineID]int, len(machIDs))
	for i, id := range machIDs {
		machineIndex[id] = i
	}

	return &Decoder{
		inst:         inst,
		jobIndex:     jobIndex,
		machineIndex: machineIndex,
		machineEnd:   make([]int, len(machIDs)),
		jobEnd:       make([]int, len(jobIDs)),
		nextStep:     make([]int, len(jobIDs)),
	}
}

func (d *Decoder) reset() {
	for i := range d.machineEnd {
		d.machineEnd[i] = 0
	}
	for i := range d.jobEnd {
		d.jobEnd[i] = 0
	}
	for i := range d.nextStep {
		d.nextStep[i] = 0
	}
}

// Decode scans chromosome left to right, scheduling each gene's step on
// its machine no earlier than both the machine's current tail and the
// job's current tail — the semi-active schedule spec §4.C defines — and
// returns the resulting Solution.
func (d *Decoder) Decode(c Chromosome) (*schedule.Solution, error) {
	d.reset()
	sol := schedule.New()

	for _, jobID := range c {
		ji, ok := d.jobIndex[jobID]
		if !ok {
			return nil, fmt.Errorf("chromosome: unknown job id %d", jobID)
		}
		stepID := jsp.StepID(d.nextStep[ji])
		step, ok := d.inst.Step(jobID, stepID)
		if !ok {
			return nil, fmt.Errorf("chromosome: job %d has no step %d (chromosome longer than job's step count)", jobID, stepID)
		}
		mi := d.machineIndex[step.MachineID]

		start := d.machineEnd[mi]
		if d.jobEnd[ji] > start {
			start = d.jobEnd[ji]
		}
		end := start + step.Duration

		d.machineEnd[mi] = end
		d.jobEnd[ji] = end
		d.nextStep[ji] = int(stepID) + 1

		sol.Insert(schedule.NewStepTask(step.MachineID, step.Duration, start, jobID, stepID))
	}

	sol.Chromosome = c.Clone()
	return sol, nil
}

// Makespan decodes chromosome and returns only its makespan, without
// allocating a Solution arena. This is the fitness-evaluation hot path
// the GA engine and operators call every time they need to rank a
// chromosome, mirroring the teacher's Evaluator.MustMakespan.
func (d *Decoder) Makespan(c Chromosome) (int, error) {
	d.reset()
	makespan := 0

	for _, jobID := range c {
		ji, ok := d.jobIndex[jobID]
		if !ok {
			return 0, fmt.Errorf("chromosome: unknown job id %d", jobID)
		}
		stepID := jsp.StepID(d.nextStep[ji])
		step, ok := d.inst.Step(jobID, stepID)
		if !ok {
			return 0, fmt.Errorf("chromosome: job %d has no step %d (chromosome longer than job's step count)", jobID, stepID)
		}
		mi := d.machineIndex[step.MachineID]

		start := d.machineEnd[mi]
		if d.jobEnd[ji] > start {
			start = d.jobEnd[ji]
		}
		end := start + step.Duration

		d.machineEnd[mi] = end
		d.jobEnd[ji] = end
		d.nextStep[ji] = int(stepID) + 1

		if end > makespan {
			makespan = end
		}
	}

	return makespan, nil
}

// MustMakespan panics on error; used where the chromosome is known
// valid by construction (e.g. immediately after Decode succeeded).
func (d *Decoder) MustMakespan(c Chromosome) int {
	ms, err := d.Makespan(c)
	if err != nil {
		panic(err)
	}
	return ms
}
