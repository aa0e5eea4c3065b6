package schedule

import (
	"fmt"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"go.uber.org/multierr"
)

// Validate checks the two feasibility invariants spec §8 names: on
// each machine, scheduled intervals are pairwise disjoint; within each
// job, step s+1 starts no earlier than step s ends. It also checks that
// the reported makespan equals the maximum end time observed.
func (s *Solution) Validate(inst *jsp.Instance) error {
	var errs error

	for _, m := range s.Machines() {
		line := s.MachineTimeline(m)
		for i := 1; i < len(line); i++ {
			if line[i].StartTime < line[i-1].EndTime {
				errs = multierr.Append(errs, fmt.Errorf(
					"machine %d: task %s [%d,%d) overlaps preceding task [%d,%d)",
					m, line[i].TaskID(), line[i].StartTime, line[i].EndTime,
					line[i-1].StartTime, line[i-1].EndTime))
			}
		}
	}

	for _, job := range inst.Jobs() {
		steps := job.Steps()
		for i := 1; i < len(steps); i++ {
			prev, ok := s.Get(jsp.TaskID{Job: job.JobID, Step: steps[i-1].StepID})
			if !ok {
				continue
			}
			cur, ok := s.Get(jsp.TaskID{Job: job.JobID, Step: steps[i].StepID})
			if !ok {
				continue
			}
			if cur.StartTime < prev.EndTime {
				errs = multierr.Append(errs, fmt.Errorf(
					"job %d: step %d starts at %d before step %d ends at %d",
					job.JobID, steps[i].StepID, cur.StartTime, steps[i-1].StepID, prev.EndTime))
			}
		}
	}

	maxEnd := 0
	for _, t := range s.tasks {
		if t.EndTime > maxEnd {
			maxEnd = t.EndTime
		}
	}
	if maxEnd != s.makespan {
		errs = multierr.Append(errs, fmt.Errorf(
			"makespan %d does not equal max end time %d", s.makespan, maxEnd))
	}

	return errs
}
