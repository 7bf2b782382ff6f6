// Package config centralizes the hunter's tunable parameters, loaded
// from environment variables with sane defaults, following the same
// shape as the host application's own configuration loader.
package config

import (
	"os"
	"strconv"
)

// Config holds every tunable knob the hunter subsystems need.
type Config struct {
	// EnsembleTarget is the target hypothesis ensemble size T.
	EnsembleTarget int
	// RefillThreshold is the ensemble size R below which a refill fires.
	RefillThreshold int
	// PlacementAttempts is K, the number of random placement attempts
	// the layout generator makes per ship before giving up.
	PlacementAttempts int
	// GenerationAttemptBudget bounds the total number of layout-generation
	// attempts Initialize/Refill will make while trying to reach the
	// ensemble target.
	GenerationAttemptBudget int
	// CandidatePoolSize is K, the number of top-scoring cells handed to
	// the alpha-beta verifier.
	CandidatePoolSize int
	// ArchitectPopulation is the default genetic population size P.
	ArchitectPopulation int
	// ArchitectGenerations is the default fixed generation count.
	ArchitectGenerations int
}

// Default returns the hunter's built-in defaults, matching spec.md.
func Default() *Config {
	return &Config{
		EnsembleTarget:          20000,
		RefillThreshold:         15000,
		PlacementAttempts:       200,
		GenerationAttemptBudget: 200000,
		CandidatePoolSize:       5,
		ArchitectPopulation:     50,
		ArchitectGenerations:    50,
	}
}

// Load reads overrides from the environment, falling back to Default for
// anything unset or malformed.
func Load() *Config {
	d := Default()

	return &Config{
		EnsembleTarget:          getEnvAsIntOrDefault("HUNTER_ENSEMBLE_TARGET", d.EnsembleTarget),
		RefillThreshold:         getEnvAsIntOrDefault("HUNTER_REFILL_THRESHOLD", d.RefillThreshold),
		PlacementAttempts:       getEnvAsIntOrDefault("HUNTER_PLACEMENT_ATTEMPTS", d.PlacementAttempts),
		GenerationAttemptBudget: getEnvAsIntOrDefault("HUNTER_GENERATION_ATTEMPT_BUDGET", d.GenerationAttemptBudget),
		CandidatePoolSize:       getEnvAsIntOrDefault("HUNTER_CANDIDATE_POOL_SIZE", d.CandidatePoolSize),
		ArchitectPopulation:     getEnvAsIntOrDefault("HUNTER_ARCHITECT_POPULATION", d.ArchitectPopulation),
		ArchitectGenerations:    getEnvAsIntOrDefault("HUNTER_ARCHITECT_GENERATIONS", d.ArchitectGenerations),
	}
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}
