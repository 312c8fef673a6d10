package htmlscrub

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/audit"
	"github.com/htmlscrub/htmlscrub/internal/cache"
	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/engine"
	"github.com/htmlscrub/htmlscrub/internal/report"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

// BaselineFile is the default baseline name at the scan root.
const BaselineFile = "htmlscrub.baseline.json"

var (
	scanFlags        batchFlags
	flagScanJSON     bool
	flagDryRun       bool
	flagLast         bool
	flagBaselinePath string
	flagFailOn       string
	flagNoHistory    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Digest the visible content of every HTML document in a tree",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	scanFlags.register(cmd)
	cmd.Flags().BoolVar(&flagScanJSON, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "list the documents that would be digested")
	cmd.Flags().BoolVar(&flagLast, "last", false, "print the results of the previous scan without scanning")
	cmd.Flags().StringVar(&flagBaselinePath, "baseline", "", "compare against a baseline file (see 'htmlscrub baseline update')")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "content", "with --baseline, exit 1 on: content | any | none")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not append this scan to the history log")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := scanFlags.engineConfig(cmd)
	if err != nil {
		return err
	}
	cfg.DryRun = flagDryRun
	nc := noColor()

	if flagLast {
		last, err := cache.LoadResults(cfg.Root)
		if err != nil {
			return fmt.Errorf("no previous scan for %s: %w", cfg.Root, err)
		}
		verbosef(cmd, "last scan at %s", last.Timestamp.Format("2006-01-02 15:04:05"))
		if flagScanJSON {
			return report.WriteJSON(cmd.OutOrStdout(), last.Documents)
		}
		return report.PrintDocuments(cmd.OutOrStdout(), last.Documents, report.PrintOptions{NoColor: nc})
	}

	verbosef(cmd, "Scanning %s with %s...", cfg.Root, digest.Normalize(cfg.Algorithm))

	// simple textual progress on interactive stderr
	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 0 && !flagScanJSON && report.IsTerminal(cmd.ErrOrStderr()) {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}
	res, err := engine.ScanWithStats(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if cfg.Progress != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	}
	docs := res.Documents
	if docs == nil {
		docs = []types.Document{} // no `null` in JSON
	}
	if !cfg.DryRun {
		if err := cache.SaveResults(cfg.Root, digest.Normalize(cfg.Algorithm), docs); err != nil {
			verbosef(cmd, "could not save results: %v", err)
		}
	}

	if flagBaselinePath != "" {
		return scanAgainstBaseline(cmd, cfg, res, docs, nc)
	}
	if !cfg.DryRun {
		recordScan(cmd, cfg, res, nil)
	}

	if flagScanJSON {
		return report.WriteJSON(cmd.OutOrStdout(), docs)
	}
	return report.PrintDocuments(cmd.OutOrStdout(), docs, report.PrintOptions{
		NoColor:      nc,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		CacheHits:    res.CacheHits,
	})
}

// recordScan appends the scan to the history log; failures only show with --verbose.
func recordScan(cmd *cobra.Command, cfg engine.Config, res engine.Result, changes []types.Change) {
	if flagNoHistory {
		return
	}
	rec := audit.NewRecord(cfg.Root, digest.Normalize(cfg.Algorithm), res, changes, flagBaselinePath)
	if err := audit.New(cfg.Root).Append(rec); err != nil {
		verbosef(cmd, "could not record scan: %v", err)
	}
}

func scanAgainstBaseline(cmd *cobra.Command, cfg engine.Config, res engine.Result, docs []types.Document, nc bool) error {
	p := flagBaselinePath
	if !filepath.IsAbs(p) {
		p = filepath.Join(cfg.Root, p)
	}
	base, err := report.LoadBaseline(p)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}
	if base.Algorithm != "" && base.Algorithm != digest.Normalize(cfg.Algorithm) {
		return fmt.Errorf("baseline %s uses %s, scan uses %s", flagBaselinePath, base.Algorithm, digest.Normalize(cfg.Algorithm))
	}
	changes := report.DiffBaseline(docs, base)
	if changes == nil {
		changes = []types.Change{}
	}
	if !cfg.DryRun {
		recordScan(cmd, cfg, res, changes)
	}
	if flagScanJSON {
		if err := report.WriteJSON(cmd.OutOrStdout(), changes); err != nil {
			return err
		}
	} else if err := report.PrintChanges(cmd.OutOrStdout(), changes, false, report.PrintOptions{NoColor: nc}); err != nil {
		return err
	}
	if report.ShouldFail(changes, flagFailOn) {
		return exitCode(1)
	}
	return nil
}
