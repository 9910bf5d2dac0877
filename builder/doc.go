// SPDX-License-Identifier: MIT

// Package builder produces deterministic synthetic trajectories and
// trajectory sets for tests, benchmarks and demos.
//
// The package offers:
//
//   - Generators: Line, Arc, ZigZag build one trajectory from parameters;
//     Jitter perturbs an existing one with seeded Gaussian noise.
//   - Set construction: BuildSet(n, gen, opts...) calls a TrajectoryFn n
//     times and keys the results with an IDFn.
//   - Configuration primitives:
//     BuilderOption mutates builderConfig before use (WithSeed, WithRand,
//     WithIDScheme, WithNoise, ...).
//   - Identifier schemes (IDFn): DefaultIDFn ("0","1",...),
//     SymbolNumberIDFn(prefix) ("t0","t1",...), ExcelColumnIDFn
//     ("A",...,"Z","AA",...) and UUIDFn(rng), random UUIDs drawn from a
//     seeded stream so they repeat across runs.
//
// Guarantees:
//
//   - Determinism: with the same seed and options every call returns the
//     same set.
//   - Option constructors panic on meaningless arguments; builders return
//     sentinel errors and never panic.
package builder
