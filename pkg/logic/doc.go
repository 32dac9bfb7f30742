// Package logic implements a System-Z-style non-monotonic inference engine
// for a restricted first-order default knowledge base: a finite set of
// defeasible conditionals "if A then typically B", a set of classical
// facts, and a finite domain of individuals over a single sort.
//
// The package is organized bottom-up: predicates/atoms/formulas (ast.go),
// grounding (ground.go), world enumeration (world.go), satisfaction
// (satisfy.go), the ranking function and acceptance relation (rank.go,
// represent.go), the tolerance-pair compatibility test (tolerance.go), the
// tolerance-pair search strategies (pair_search_brute.go,
// pair_search_backtrack.go), and the System-Z ranking constructor
// (systemz.go).
//
// Every algorithm here is single-threaded and CPU-bound; the only
// concurrency touchpoint is cooperative cancellation through a
// context.Context, threaded down to the tolerance-pair search.
package logic
