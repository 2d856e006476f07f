package main

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/titrate/config"
	"github.com/katalvlaran/titrate/logger"
)

// app carries the state resolved once per invocation.
type app struct {
	configFile string
	verbosity  int

	v   *viper.Viper
	cfg *config.Config
	log *zap.SugaredLogger
}

// scalarFlags maps flag names to the config keys they override.
var scalarFlags = map[string]string{
	"pi":       "acid.pi",
	"name":     "acid.name",
	"out":      "output.path",
	"format":   "output.format",
	"width":    "output.width",
	"height":   "output.height",
	"json-log": "log.json",
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "titrate",
		Short: "Titration curve of a triprotic acid",
		Long: `titrate computes the protonation-state distribution of a triprotic weak
acid (histidine by default) over pH 0..14 and plots the titration curve:
pH against the equivalents of OH⁻ added per mole (n̄).

Configuration sources (later overrides earlier):
  1. Built-in defaults
  2. ./titrate.toml or --config <file>
  3. TITRATE_* environment variables (TITRATE_ACID_PKA="2.1,3.9,9.8")
  4. Command line flags

Examples:
  titrate                               # write titration.png
  titrate --out - --format svg > c.svg  # SVG to stdout
  titrate --pka 1.8,6.0,9.2 --pi 7.59   # another acid
  titrate table                         # species fractions per pH
  titrate config show --format yaml     # resolved configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, true)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./titrate.toml if present)")
	root.PersistentFlags().Bool("json-log", false, "emit JSON logs on stderr")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")
	addAcidFlags(root)
	addOutputFlags(root)

	root.AddCommand(newPlotCmd(a), newTableCmd(a), newConfigCmd(a))

	return root
}

// init resolves configuration and the logger before any command runs.
// Flags override file and environment values only when bind is set.
func (a *app) init(cmd *cobra.Command, bind bool) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if bind {
		if err = bindFlags(v, cmd); err != nil {
			return err
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err = logger.Initialize(cfg.Log.JSON, a.verbosity); err != nil {
		return errors.Wrap(err, "initialize logger")
	}

	a.v, a.cfg = v, cfg
	a.log = logger.ComponentLogger(cmd.Name()).With(logger.FieldRunID, uuid.NewString())
	a.log.Debugw("configuration resolved",
		logger.FieldFile, v.ConfigFileUsed(),
		"pka", cfg.Acid.PKa,
		"pi", cfg.Acid.PI,
		"output", cfg.Output.Path,
		logger.FieldFormat, cfg.Output.Format)

	return nil
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range scalarFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}

	// pflag renders float slices as "[a,b,c]", which viper cannot decode back.
	if f := cmd.Flags().Lookup("pka"); f != nil && f.Changed {
		pka, err := cmd.Flags().GetFloat64Slice("pka")
		if err != nil {
			return errors.Wrap(err, "--pka")
		}
		v.Set("acid.pka", pka)
	}

	return nil
}

func addAcidFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("pka", nil, "pKa values, comma separated (exactly 3)")
	cmd.Flags().Float64("pi", 0, "isoelectric point drawn as a horizontal line")
	cmd.Flags().String("name", "", "acid name used in the title and axis label")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", `output file, "-" for stdout`)
	cmd.Flags().StringP("format", "f", "", "image format: png or svg")
	cmd.Flags().Int("width", 0, "image width in pixels")
	cmd.Flags().Int("height", 0, "image height in pixels")
}
