// Package sim is the Monte Carlo engine for layered missile-defense
// engagement analysis.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - salvo.go: population expansion (missiles → warheads + decoys) and shuffling
//   - trial.go: the per-trial loop — detection, classification, engagement against a shared inventory
//   - montecarlo.go: trial repetition, per-metric aggregation, summary statistics
//
// # Architecture
//
// One trial walks a shuffled object population in strict order, threading a
// single inventory counter through every engagement. A trial-wide reliability
// draw (degradation.go) fixes the operative detection and kill probabilities
// before any object is processed. Shot allocation is a strategy behind the
// EngagementDoctrine interface (doctrine.go) with two implementations,
// barrage and shoot-look-shoot.
//
// All entropy flows through a seeded Stream (rng.go); trials derive isolated
// streams from a master seed, so a run is reproducible bit-for-bit at any
// worker count.
package sim
