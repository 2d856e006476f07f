package main

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
		// show has its own --format, which must not reach output.format.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, false)
		},
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the configuration after defaults, file and environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow(cmd, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "output format: toml, json, yaml")

	where := &cobra.Command{
		Use:   "where",
		Short: "Show which config file was read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			used := a.v.ConfigFileUsed()
			if used == "" {
				used = "(none, defaults and environment only)"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), used)
			return err
		},
	}

	cmd.AddCommand(show, where)

	return cmd
}

func (a *app) runConfigShow(cmd *cobra.Command, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(a.cfg, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(a.cfg)
	case "toml":
		data, err = toml.Marshal(a.cfg)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	if err != nil {
		return errors.Wrapf(err, "marshal config to %s", format)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
