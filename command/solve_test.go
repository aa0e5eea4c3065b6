package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bufferUI struct {
	out []string
	err []string
}

func (b *bufferUI) Output(s string) { b.out = append(b.out, s) }
func (b *bufferUI) Error(s string)  { b.err = append(b.err, s) }

func TestSolveCommandHappyPath(t *testing.T) {
	ui := &bufferUI{}
	cmd := &SolveCommand{UI: ui}

	code := cmd.Run([]string{
		"--num-jobs=4",
		"--num-machines=3",
		"--num-threads=2",
		"--time-limit=50ms",
		"--seed=7",
	})

	assert.Equal(t, 0, code)
	assert.Empty(t, ui.err)
	assert.True(t, len(ui.out) >= 2)
	assert.True(t, strings.Contains(ui.out[0], "instance:"))
}

func TestSolveCommandRejectsBadFlags(t *testing.T) {
	ui := &bufferUI{}
	cmd := &SolveCommand{UI: ui}

	code := cmd.Run([]string{"--num-threads=0"})
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, ui.err)
}

func TestSolveCommandHasHelpAndSynopsis(t *testing.T) {
	cmd := &SolveCommand{}
	assert.NotEmpty(t, cmd.Help())
	assert.NotEmpty(t, cmd.Synopsis())
}
