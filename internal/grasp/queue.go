package grasp

import "github.com/r3b0rn/jsspsolve/internal/jsp"

// readyStep is a step that has become eligible for scheduling: either
// it is the first step of its job, or the step before it has finished.
type readyStep struct {
	jobID     jsp.JobID
	stepID    jsp.StepID
	machineID jsp.MachineID
	duration  int
	readyTime int
}

// machineState tracks one machine's scheduling head: its current
// finish time, its plan time (the priority the machine queue orders
// on), and the steps currently ready to run on it.
type machineState struct {
	machineID jsp.MachineID
	currTime  int
	planTime  int
	ready     []readyStep
	index     int // heap.Interface bookkeeping
}

// machineQueue is a container/heap priority queue of machines ordered
// by ascending plan time — the same "sort machines, pick the one with
// the smallest plan time" step the constructor repeats every
// iteration, expressed as a heap instead of a re-sort.
type machineQueue []*machineState

func (q machineQueue) Len() int { return len(q) }

func (q machineQueue) Less(i, j int) bool { return q[i].planTime < q[j].planTime }

func (q machineQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *machineQueue) Push(x any) {
	m := x.(*machineState)
	m.index = len(*q)
	*q = append(*q, m)
}

func (q *machineQueue) Pop() any {
	old := *q
	n := len(old)
	m := old[n-1]
	old[n-1] = nil
	m.index = -1
	*q = old[:n-1]
	return m
}
