// SPDX-License-Identifier: MIT
// Package: titrate/render
//
// chart.go: chart model assembly and encoding.
//
// Implementation:
//   - Stage 1: validate inputs (non-nil, ≥ 2 samples).
//   - Stage 2: curve series (x = n̄, y = pH).
//   - Stage 3: half-equivalence guides + pKa labels, pI line.
//   - Stage 4: axes with fixed bounds, ticks and a dotted grid; title sized
//     to fit the canvas; secondary axis hidden.
//   - Stage 5: legend restricted to the curve and the pI line.

package render

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/titrate/acid"
	"github.com/katalvlaran/titrate/speciation"
)

// Axis bounds.
const (
	XMin = -0.05
	XMax = 3.05
	YMin = 0.0
	YMax = 14.0
)

// Title layout: TitleFontSize keeps the default title inside DefaultWidth and
// TopPadding keeps the legend, drawn at the top of the plot area, below it.
const (
	TitleFontSize = 14.0
	TopPadding    = 48
)

var (
	curveColor = drawing.ColorFromHex("1f77b4")
	guideColor = drawing.ColorFromHex("ff7f0e")
	pIColor    = drawing.ColorFromHex("2ca02c")
	gridColor  = drawing.ColorFromHex("d0d0d0")

	dashed = []float64{6, 4}
	dotted = []float64{1.5, 3}
)

// PILabel returns the legend entry of the isoelectric line.
func PILabel(pI float64) string {
	return fmt.Sprintf("Isoelectric point (pI ≈ %.2f)", pI)
}

// PKaLabel returns the annotation placed on a half-equivalence guide.
func PKaLabel(pKa float64) string {
	return fmt.Sprintf("pKa ≈ %.2f", pKa)
}

// Build assembles the chart model for d and a without encoding it.
//
// Errors: ErrNilInput, ErrTooFewSamples.
func Build(d *speciation.Distribution, a *acid.Acid, opts ...Option) (chart.Chart, error) {
	return build(d, a, newConfig(opts...))
}

// Render encodes the chart of d and a to w in the configured format.
//
// Errors: those of Build, plus encoder failures wrapped with context.
func Render(w io.Writer, d *speciation.Distribution, a *acid.Acid, opts ...Option) error {
	cfg := newConfig(opts...)
	ch, err := build(d, a, cfg)
	if err != nil {
		return err
	}

	provider := chart.PNG
	if cfg.format == FormatSVG {
		provider = chart.SVG
	}
	if err = ch.Render(provider, w); err != nil {
		return errors.Wrapf(err, "Render: encode %s", cfg.format)
	}

	return nil
}

func build(d *speciation.Distribution, a *acid.Acid, cfg config) (chart.Chart, error) {
	if d == nil || a == nil {
		return chart.Chart{}, ErrNilInput
	}
	if d.Len() < 2 {
		return chart.Chart{}, errors.Wrapf(ErrTooFewSamples, "Build: %d sample(s)", d.Len())
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return chart.Chart{}, errors.Wrap(err, "Build: load font")
	}

	curve := chart.ContinuousSeries{
		Name:    capitalize(cfg.subject) + " titration curve",
		Style:   chart.Style{StrokeColor: curveColor, StrokeWidth: 2},
		XValues: d.NBar(),
		YValues: d.PH(),
	}

	pKa := a.PKa()
	mid := a.MidEquivalence()
	series := make([]chart.Series, 0, len(mid)+3)
	series = append(series, curve)
	labels := make([]chart.Value2, 0, len(mid))
	for i, x := range mid {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("n̄ = %.1f", x),
			Style:   chart.Style{StrokeColor: guideColor, StrokeWidth: 1, StrokeDashArray: dashed},
			XValues: []float64{x, x},
			YValues: []float64{YMin, YMax},
		})
		labels = append(labels, chart.Value2{XValue: x, YValue: pKa[i], Label: PKaLabel(pKa[i])})
	}

	pI := a.PI()
	pILine := chart.ContinuousSeries{
		Name:    PILabel(pI),
		Style:   chart.Style{StrokeColor: pIColor, StrokeWidth: 1, StrokeDashArray: dotted},
		XValues: []float64{XMin, XMax},
		YValues: []float64{pI, pI},
	}
	series = append(series, pILine, chart.AnnotationSeries{Name: "pKa", Annotations: labels})

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1, StrokeDashArray: dotted}
	ch := chart.Chart{
		Title:      cfg.title,
		TitleStyle: chart.Style{FontSize: TitleFontSize},
		Width:      cfg.width,
		Height:     cfg.height,
		Font:       font,
		Background: chart.Style{Padding: chart.Box{Top: TopPadding, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           fmt.Sprintf("Equivalents of OH⁻ added per mole of %s (n̄)", cfg.subject),
			Range:          &chart.ContinuousRange{Min: XMin, Max: XMax},
			Ticks:          boundedTicks(XMin, XMax, ticks(0, 3, 0.5, "%.1f")),
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "pH",
			Range:          &chart.ContinuousRange{Min: YMin, Max: YMax},
			Ticks:          ticks(YMin, YMax, 2, "%.0f"),
			GridMajorStyle: grid,
		},
		// No series is bound to the secondary axis; drawn empty it emits
		// labels at overflowed coordinates.
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		Series:         series,
	}

	// The legend reads series from its own chart so the guides stay out of it.
	legend := chart.Chart{Font: font, Series: []chart.Series{curve, pILine}}
	ch.Elements = []chart.Renderable{chart.Legend(&legend)}

	return ch, nil
}

// boundedTicks adds unlabelled ticks at lo and hi; go-chart widens or
// narrows an axis to its tick span.
func boundedTicks(lo, hi float64, inner []chart.Tick) []chart.Tick {
	out := make([]chart.Tick, 0, len(inner)+2)
	out = append(out, chart.Tick{Value: lo})
	out = append(out, inner...)

	return append(out, chart.Tick{Value: hi})
}

// ticks returns evenly spaced labelled ticks over [lo, hi].
func ticks(lo, hi, step float64, format string) []chart.Tick {
	n := int((hi-lo)/step + 0.5)
	out := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + float64(i)*step
		out = append(out, chart.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}

	return out
}
