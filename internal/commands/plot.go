package commands

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moneyovertime/mot/internal/balance"
	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/movements"
	"github.com/moneyovertime/mot/internal/report"
)

func newPlotCommand(g *globalFlags) *cobra.Command {
	var src sourceFlags
	var exclude, include filterFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Show the balance of a records file over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exclude.set() && include.set() {
				return errors.New("--exclude-* and --include-* cannot be used together")
			}
			filter := exclude.filter(model.DropMatching)
			if include.set() {
				filter = include.filter(model.KeepMatching)
			}

			renderer, err := out.renderer()
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := src.options(cfg, filter)
			if err != nil {
				return failure(err, msgBadFileArgs, g.verbose)
			}

			var buf bytes.Buffer
			if err := runPlot(&buf, src.file, opts, renderer); err != nil {
				return failure(err, msgBadFileArgs, g.verbose)
			}
			return report.Pager{Out: cmd.OutOrStdout(), Enabled: !out.noPager}.Write(buf.String())
		},
	}

	src.bind(cmd.Flags(), "", "file", "f", "profile")
	_ = cmd.MarkFlagRequired("file")
	exclude.bind(cmd.Flags(), "exclude", "exclude")
	include.bind(cmd.Flags(), "include", "keep")
	out.bind(cmd.Flags())

	return cmd
}

func runPlot(buf *bytes.Buffer, path string, opts movements.Options, renderer report.Renderer) error {
	raw, err := movements.Load(path, opts)
	if err != nil {
		return err
	}
	series, err := balance.Project(raw)
	if err != nil {
		return fmt.Errorf("projecting balance: %w", err)
	}
	log.Debug("balance projected", "dates", len(series))

	return renderer.RenderBalance(buf, series, opts.Date.Format)
}
