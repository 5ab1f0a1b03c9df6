package commands

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/moneyovertime/mot/internal/balance"
	"github.com/moneyovertime/mot/internal/diff"
	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/movements"
	"github.com/moneyovertime/mot/internal/report"
)

func newDiffCommand(g *globalFlags) *cobra.Command {
	var source, reference sourceFlags
	var include filterFlags
	var out outputFlags
	var cumulative bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Find the dates where two records files disagree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := out.renderer()
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			srcOpts, err := source.options(cfg, include.filter(model.KeepMatching))
			if err != nil {
				return failure(err, msgBadFilesArgs, g.verbose)
			}
			refOpts, err := reference.options(cfg, nil)
			if err != nil {
				return failure(err, msgBadFilesArgs, g.verbose)
			}

			var buf bytes.Buffer
			job := diffJob{
				sourcePath:    source.file,
				source:        srcOpts,
				referencePath: reference.file,
				reference:     refOpts,
				cumulative:    cumulative,
			}
			if err := job.run(&buf, renderer); err != nil {
				return failure(err, msgBadFilesArgs, g.verbose)
			}
			return report.Pager{Out: cmd.OutOrStdout(), Enabled: !out.noPager}.Write(buf.String())
		},
	}

	source.bind(cmd.Flags(), "source-", "source-file", "", "source-profile")
	reference.bind(cmd.Flags(), "reference-", "reference-file", "", "reference-profile")
	_ = cmd.MarkFlagRequired("source-file")
	_ = cmd.MarkFlagRequired("reference-file")
	include.bind(cmd.Flags(), "include", "keep from the source file")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "compare running balances instead of per-date movements")
	out.bind(cmd.Flags())

	return cmd
}

type diffJob struct {
	sourcePath    string
	source        movements.Options
	referencePath string
	reference     movements.Options
	cumulative    bool
}

func (j diffJob) run(buf *bytes.Buffer, renderer report.Renderer) error {
	var src, ref model.Series
	var eg errgroup.Group
	eg.Go(func() error {
		s, err := j.load(j.sourcePath, j.source)
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
		src = s
		return nil
	})
	eg.Go(func() error {
		s, err := j.load(j.referencePath, j.reference)
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
		ref = s
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	r := diff.Compare(src, ref)
	log.Debug("compared", "source_dates", len(src), "reference_dates", len(ref), "discrepancies", len(r))

	return renderer.RenderDiff(buf, r, j.source.Date.Format)
}

func (j diffJob) load(path string, opts movements.Options) (model.Series, error) {
	raw, err := movements.Load(path, opts)
	if err != nil || !j.cumulative {
		return raw, err
	}
	return balance.Project(raw)
}
