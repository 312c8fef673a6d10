package htmlscrub

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/engine"
	"github.com/htmlscrub/htmlscrub/internal/report"
)

var baselineFlags batchFlags

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Record the current visible digests in " + BaselineFile,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := baselineFlags.engineConfig(cmd)
			if err != nil {
				return err
			}
			docs, err := engine.Scan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			p := filepath.Join(cfg.Root, BaselineFile)
			if err := report.SaveBaseline(p, digest.Normalize(cfg.Algorithm), docs); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated (%d documents).\n", len(docs))
			return nil
		},
	}
	baselineFlags.register(update)

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
