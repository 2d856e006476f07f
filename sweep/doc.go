// Package sweep generates the deterministic, evenly spaced sample grids the
// titration curve is evaluated on.
//
// The package offers:
//
//   - Linspace(n, lo, hi): n evenly spaced values from lo to hi inclusive,
//     with the first value exactly lo and the last exactly hi.
//   - PH(opts...): the default pH grid, DefaultPoints samples over
//     [MinPH, MaxPH], adjustable with functional options.
//   - Option constructors (WithPoints, WithRange) that validate eagerly and
//     panic on meaningless values; generators themselves never panic and
//     report ErrBadSize / ErrBadRange.
//
// All outputs are freshly allocated and depend only on their inputs.
package sweep
