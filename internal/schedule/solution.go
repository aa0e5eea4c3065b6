package schedule

import (
	"sort"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
)

// Solution is a feasible (or in-progress) schedule: every step-task
// produced so far, indexed both by the job step it satisfies and by
// the machine timeline it occupies.
//
// Tasks live in a single arena (tasks); machine timelines hold arena
// indices rather than pointers or weak references, so a Solution is
// trivially copyable — cloning it for global-best replacement is a
// slice copy, not a graph walk (see DESIGN.md / SPEC_FULL.md §3).
type Solution struct {
	tasks       []Task
	byTask      map[jsp.TaskID]int
	machineLine map[jsp.MachineID][]int
	makespan    int

	// Chromosome is the permutation that witnesses this schedule, if
	// one produced it (GRASP construction leaves this nil; decoding a
	// chromosome sets it).
	Chromosome []jsp.JobID

	// Graph is a reserved extension point for a disjunctive-graph
	// neighbourhood search (spec Non-goals: unused). Always nil today.
	Graph any
}

// New returns an empty Solution ready to receive Insert calls.
func New() *Solution {
	return &Solution{
		byTask:      make(map[jsp.TaskID]int),
		machineLine: make(map[jsp.MachineID][]int),
	}
}

// Insert appends a task to the arena and to its machine's timeline,
// returning the task's arena index. Makespan is updated in O(1): every
// caller in this repository inserts tasks for a given machine in
// non-decreasing start-time order (both the GRASP constructor and the
// chromosome decoder schedule a machine's steps in the order they
// become its current tail), so no re-sort is needed on the hot path.
// Callers that cannot guarantee that ordering should call Recompute
// afterwards.
func (s *Solution) Insert(t Task) int {
	idx := len(s.tasks)
	s.tasks = append(s.tasks, t)
	if t.Kind == KindStep {
		s.byTask[t.TaskID()] = idx
	}
	s.machineLine[t.MachineID] = append(s.machineLine[t.MachineID], idx)
	if t.EndTime > s.makespan {
		s.makespan = t.EndTime
	}
	return idx
}

// Get looks up the task scheduled for a given (job, step) pair.
func (s *Solution) Get(id jsp.TaskID) (Task, bool) {
	idx, ok := s.byTask[id]
	if !ok {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// Tasks returns every task in the solution's arena, in insertion order.
func (s *Solution) Tasks() []Task {
	return s.tasks
}

// NumTasks reports how many tasks have been inserted.
func (s *Solution) NumTasks() int {
	return len(s.tasks)
}

// MachineTimeline returns the tasks scheduled on a machine, in the
// order they were inserted; that is start-time order when they were
// inserted in start-time order or after Recompute.
func (s *Solution) MachineTimeline(m jsp.MachineID) []Task {
	idxs := s.machineLine[m]
	out := make([]Task, len(idxs))
	for i, idx := range idxs {
		out[i] = s.tasks[idx]
	}
	return out
}

// Machines returns the set of machine ids that have at least one
// scheduled task.
func (s *Solution) Machines() []jsp.MachineID {
	out := make([]jsp.MachineID, 0, len(s.machineLine))
	for m := range s.machineLine {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Makespan returns the maximum end time over every scheduled task.
func (s *Solution) Makespan() int {
	return s.makespan
}

// Recompute rebuilds the makespan and re-sorts every machine timeline
// by start time. Use it after building a Solution by some means other
// than Insert-in-order (e.g. assembling tasks out of band in tests).
func (s *Solution) Recompute() {
	for m, idxs := range s.machineLine {
		sorted := append([]int(nil), idxs...)
		sort.Slice(sorted, func(i, j int) bool {
			return s.tasks[sorted[i]].StartTime < s.tasks[sorted[j]].StartTime
		})
		s.machineLine[m] = sorted
	}
	makespan := 0
	for _, t := range s.tasks {
		if t.EndTime > makespan {
			makespan = t.EndTime
		}
	}
	s.makespan = makespan
}

// Clone returns a deep-enough copy that mutating the clone's arena or
// timelines never affects the original: a new backing arena plus fresh
// per-machine index slices and task-id index.
func (s *Solution) Clone() *Solution {
	out := &Solution{
		tasks:       append([]Task(nil), s.tasks...),
		byTask:      make(map[jsp.TaskID]int, len(s.byTask)),
		machineLine: make(map[jsp.MachineID][]int, len(s.machineLine)),
		makespan:    s.makespan,
		Graph:       s.Graph,
	}
	for k, v := range s.byTask {
		out.byTask[k] = v
	}
	for m, idxs := range s.machineLine {
		out.machineLine[m] = append([]int(nil), idxs...)
	}
	if s.Chromosome != nil {
		out.Chromosome = append([]jsp.JobID(nil), s.Chromosome...)
	}
	return out
}
