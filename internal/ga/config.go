package ga

import "fmt"

// Config parameterises one GA worker's island.
type Config struct {
	Population     int
	Elite          int
	DropWorst      int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64

	// PersonalBestPoolSize bounds the shared cross-island immigrant
	// pool every worker contributes its generation-best to and draws
	// immigrants from.
	PersonalBestPoolSize int

	// MaxGenerations bounds the per-worker loop independently of the
	// orchestrator's context deadline. 0 means unbounded — the worker
	// runs until ctx is done. Tests set this to keep runs short without
	// needing a context timeout.
	MaxGenerations int
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf("ga: population must be > 1, got %d", c.Population)
	}
	if c.Elite < 0 || c.Elite >= c.Population {
		return fmt.Errorf("ga: elite must be in [0, population), got %d", c.Elite)
	}
	if c.DropWorst < 0 || c.DropWorst >= c.Population || c.Elite+c.DropWorst > c.Population {
		return fmt.Errorf("ga: drop-worst must be >= 0, < population, and elite+dropWorst <= population, got %d", c.DropWorst)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf("ga: tournament size must be > 0, got %d", c.TournamentSize)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("ga: crossover rate must be in [0,1], got %f", c.CrossoverRate)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("ga: mutation rate must be in [0,1], got %f", c.MutationRate)
	}
	if c.PersonalBestPoolSize <= 0 {
		return fmt.Errorf("ga: personal best pool size must be > 0, got %d", c.PersonalBestPoolSize)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("ga: max generations must be >= 0, got %d", c.MaxGenerations)
	}
	return nil
}

// DefaultConfig returns the island's default tuning: population 100,
// tournament size 5, elite 10, drop-worst 30, 30% mutation / 70%
// crossover branch probabilities, per spec §4.F.
func DefaultConfig() Config {
	return Config{
		Population:           100,
		Elite:                10,
		DropWorst:            30,
		TournamentSize:       5,
		CrossoverRate:        0.7,
		MutationRate:         0.3,
		PersonalBestPoolSize: 10,
		MaxGenerations:       0,
	}
}
