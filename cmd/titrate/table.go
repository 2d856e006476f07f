package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/titrate/logger"
	"github.com/katalvlaran/titrate/speciation"
	"github.com/katalvlaran/titrate/sweep"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print species fractions and n̄ per pH",
		Long: `Print α0..α3 and n̄ at every integer pH from 0 to 14 and at the three
half-equivalence points (n̄ = 0.5, 1.5, 2.5) located on the curve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(cmd)
		},
	}
	addAcidFlags(cmd)

	return cmd
}

func (a *app) runTable(cmd *cobra.Command) error {
	acidCfg, err := a.cfg.NewAcid()
	if err != nil {
		return err
	}
	ph, err := sweep.PH()
	if err != nil {
		return err
	}
	curve, err := speciation.Compute(acidCfg, ph)
	if err != nil {
		return err
	}
	half, err := curve.HalfEquivalence()
	if err != nil {
		return err
	}

	samples, err := sweep.Linspace(int(sweep.MaxPH-sweep.MinPH)+1, sweep.MinPH, sweep.MaxPH)
	if err != nil {
		return err
	}
	samples = append(samples, half...)
	sort.Float64s(samples)

	d, err := speciation.Compute(acidCfg, samples)
	if err != nil {
		return err
	}

	data := pterm.TableData{{"pH",
		"α " + speciation.Species(0), "α " + speciation.Species(1),
		"α " + speciation.Species(2), "α " + speciation.Species(3), "n̄"}}
	for i := 0; i < d.Len(); i++ {
		p, err := d.At(i)
		if err != nil {
			return err
		}
		row := []string{fmt.Sprintf("%.2f", p.PH)}
		for _, x := range p.Alpha {
			row = append(row, fmt.Sprintf("%.4f", x))
		}
		data = append(data, append(row, fmt.Sprintf("%.3f", p.NBar)))
	}
	a.log.Debugw("table assembled", logger.FieldCount, d.Len(), "half_equivalence", half)

	return pterm.DefaultTable.
		WithHasHeader().
		WithRightAlignment().
		WithData(data).
		WithWriter(cmd.OutOrStdout()).
		Render()
}
