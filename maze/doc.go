// Package maze scatters barriers over a grid.Grid by a randomized,
// stack-based spanning traversal from a single barrier seed.
//
// Neighbors of a barrier are walled with probability Near (0.6 by default),
// all others with probability Far (0.2), which clusters walls around the seed
// while sprinkling isolated obstacles elsewhere. Layouts are reproducible per
// seed (WithSeed, WithRand). Start and End cells are never walled.
//
// Generate reuses the search step/cancel port: WithOnStep runs once per pop,
// WithContext and WithCancel are polled at the same cadence.
package maze
