package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/titrate/logger"
	"github.com/katalvlaran/titrate/render"
	"github.com/katalvlaran/titrate/speciation"
	"github.com/katalvlaran/titrate/sweep"
)

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the titration curve (default command)",
		Long: `Render pH (y) against n̄ (x) with dashed guides at the half-equivalence
points and a dotted line at the isoelectric point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(cmd)
		},
	}
	addAcidFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

func (a *app) runPlot(cmd *cobra.Command) error {
	acidCfg, err := a.cfg.NewAcid()
	if err != nil {
		return err
	}
	ph, err := sweep.PH()
	if err != nil {
		return err
	}
	d, err := speciation.Compute(acidCfg, ph)
	if err != nil {
		return err
	}
	a.log.Infow("distribution computed",
		"acid", a.cfg.Acid.Name,
		"pka", acidCfg.PKa(),
		logger.FieldCount, d.Len(),
		"closure_error", d.MaxClosureError())

	opts, err := a.cfg.RenderOptions()
	if err != nil {
		return err
	}
	draw := func(w io.Writer) error { return render.Render(w, d, acidCfg, opts...) }

	if a.cfg.ToStdout() {
		return draw(cmd.OutOrStdout())
	}
	if err = writeFile(a.cfg.Output.Path, draw); err != nil {
		return err
	}
	a.log.Infow("chart written", logger.FieldFile, a.cfg.Output.Path, logger.FieldFormat, a.cfg.Output.Format)

	return nil
}

// writeFile creates path and hands it to fn, reporting close errors.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return fn(f)
}
