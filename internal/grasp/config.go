package grasp

import "fmt"

// Config parameterises the greedy-randomised constructor.
type Config struct {
	// Alpha is the GRASP restricted-candidate-list fraction: at each
	// step the constructor draws uniformly from the best
	// floor(len(ready)*Alpha)+1 ready steps on the selected machine.
	// Alpha 0 degenerates to a pure greedy constructor; Alpha 1
	// degenerates to uniform-random selection among all ready steps.
	Alpha float64

	// LivelockBump is how far a starved machine's plan time is pushed
	// forward when its ready list is empty but steps are still
	// waiting elsewhere, so the machine priority queue eventually
	// surfaces the machine that can unblock it.
	LivelockBump int
}

func (c Config) Validate() error {
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("grasp: alpha must be in [0,1], got %f", c.Alpha)
	}
	if c.LivelockBump <= 0 {
		return fmt.Errorf("grasp: livelock bump must be > 0, got %d", c.LivelockBump)
	}
	return nil
}

// DefaultConfig returns the constructor's default tuning.
func DefaultConfig() Config {
	return Config{
		Alpha:        0.3,
		LivelockBump: 3,
	}
}
