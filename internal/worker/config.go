// Package worker provides background job processing for Clean Air Routes.
package worker

import (
	"time"
)

// EvaluateConfig holds configuration for the alert evaluation sweep.
type EvaluateConfig struct {
	// Concurrency is the number of concurrent route evaluations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for evaluating a single route.
	// Default: 10 seconds
	Timeout time.Duration
}

// DefaultEvaluateConfig returns the default evaluation configuration.
func DefaultEvaluateConfig() EvaluateConfig {
	return EvaluateConfig{
		Concurrency: 3,
		Timeout:     10 * time.Second,
	}
}

// normalized returns the config with zero values replaced by defaults.
func (c EvaluateConfig) normalized() EvaluateConfig {
	def := DefaultEvaluateConfig()
	if c.Concurrency <= 0 {
		c.Concurrency = def.Concurrency
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}
