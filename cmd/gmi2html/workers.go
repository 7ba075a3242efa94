package main

import "runtime"

// Auto worker count bounds.
const (
	minAutoWorkers = 1
	maxAutoWorkers = 8
)

// resolveWorkers determines how many documents are converted at once.
// Priority: explicit count > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	// Explicit count takes priority
	if configured > 0 {
		return configured
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / 2
	return min(max(n, minAutoWorkers), maxAutoWorkers)
}
