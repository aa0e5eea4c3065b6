package jsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStepsOrderedAscending(t *testing.T) {
	inst := threeByTwo(t)

	job, ok := inst.Job(0)
	require.True(t, ok)

	steps := job.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, StepID(0), steps[0].StepID)
	assert.Equal(t, StepID(1), steps[1].StepID)
}

func TestTaskIDString(t *testing.T) {
	id := TaskID{Job: 3, Step: 2}
	assert.Equal(t, "(job=3,step=2)", id.String())
}
