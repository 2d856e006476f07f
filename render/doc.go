// Package render draws the titration curve of a triprotic acid as a 2-D
// line chart with github.com/wcharczuk/go-chart/v2.
//
// Layout:
//
//	x: equivalents of OH⁻ added per mole of acid (n̄), bounds [-0.05, 3.05]
//	y: pH, bounds [0, 14]
//
// Series:
//
//   - the titration curve (n̄, pH);
//   - three dashed vertical guides at the half-equivalence points
//     n̄ = 0.5, 1.5, 2.5, each labelled "pKa ≈ X.XX" at y = pKa;
//   - one dotted horizontal line at y = pI.
//
// Only the curve and the pI line appear in the legend. Build returns the
// chart model so callers can inspect or restyle it; Render encodes it as PNG
// (default) or SVG to any io.Writer.
package render
