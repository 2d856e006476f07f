// Package titrate computes and plots the titration curve of a triprotic
// weak acid, histidine by default.
//
// 🚀 What is titrate?
//
//	A small, deterministic pipeline that brings together:
//		• Acid model: three pKa values (any order) + isoelectric point
//		• pH sweep: 2000 evenly spaced samples over [0, 14]
//		• Speciation: fractions α0..α3 of H3A, H2A⁻, HA²⁻, A³⁻ and the
//		  average number of protons lost, n̄ = α1 + 2α2 + 3α3
//		• Rendering: pH vs n̄ with half-equivalence guides and the pI line,
//		  as PNG or SVG
//
// ✨ Guarantees
//
//   - Σα = 1 per sample, n̄ non-decreasing from ≈0 to ≈3
//   - Input pKa order never changes the result
//   - Pure computation: re-runs are bit-identical
//
// Under the hood:
//
//	acid/        validated acid model (sorted pKa, Ka = 10^-pKa)
//	sweep/       linspace grids with exact endpoints
//	matrix/      row-major Dense + column kernels (L1 normalisation, wᵀX)
//	speciation/  distribution calculator and inverse n̄ → pH lookup
//	render/      go-chart/v2 chart model and encoders
//	config/      viper defaults, titrate.toml, TITRATE_* environment
//	logger/      global zap logger
//	cmd/titrate  cobra CLI: plot (default), table, config
//
// Quick start:
//
//	go run ./cmd/titrate                 # writes titration.png
//	go run ./cmd/titrate table           # α and n̄ per pH
package titrate
