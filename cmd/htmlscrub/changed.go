package htmlscrub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/engine"
	"github.com/htmlscrub/htmlscrub/internal/git"
	"github.com/htmlscrub/htmlscrub/internal/report"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

var (
	changedFlags    batchFlags
	flagBase        string
	flagChangedJSON bool
	flagChangedFail bool
	flagChangedAll  bool
)

// changedEnvelope is the JSON shape of `changed --json`.
type changedEnvelope struct {
	Repo    string         `json:"repo,omitempty"`
	Commit  string         `json:"commit,omitempty"`
	Branch  string         `json:"branch,omitempty"`
	Base    string         `json:"base"`
	Summary map[string]int `json:"summary"`
	Changes []types.Change `json:"changes"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "changed",
		Short: "Compare the visible content of the working tree against a git revision",
		Long: `Compare every HTML document in the working tree with its committed version.
Documents whose markup changed but whose visible content did not are reported
as "markup"; only content, added and removed documents count as visible changes.`,
		RunE: runChanged,
	}
	rootCmd.AddCommand(cmd)

	changedFlags.register(cmd)
	cmd.Flags().StringVar(&flagBase, "base", "HEAD", "git revision to compare against")
	cmd.Flags().BoolVar(&flagChangedJSON, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&flagChangedFail, "fail", false, "exit 1 when any visible content changed")
	cmd.Flags().BoolVar(&flagChangedAll, "all", false, "also list unchanged documents")
}

func runChanged(cmd *cobra.Command, _ []string) error {
	cfg, err := changedFlags.engineConfig(cmd)
	if err != nil {
		return err
	}
	verbosef(cmd, "Comparing %s against %s...", cfg.Root, flagBase)
	changes, err := engine.Compare(cmd.Context(), cfg, flagBase)
	if err != nil {
		return fmt.Errorf("compare against %s: %w", flagBase, err)
	}
	if changes == nil {
		changes = []types.Change{}
	}

	summary := report.Summarize(changes)
	if flagChangedJSON {
		repo, commit, branch := git.RepoMetadata(cfg.Root)
		env := changedEnvelope{
			Repo:    repo,
			Commit:  commit,
			Branch:  branch,
			Base:    flagBase,
			Summary: map[string]int{},
			Changes: changes,
		}
		for status, n := range summary {
			env.Summary[string(status)] = n
		}
		if err := report.WriteJSON(cmd.OutOrStdout(), env); err != nil {
			return err
		}
	} else if err := report.PrintChanges(cmd.OutOrStdout(), changes, flagChangedAll, report.PrintOptions{NoColor: noColor()}); err != nil {
		return err
	}

	if flagChangedFail && summary.Visible() > 0 {
		return exitCode(1)
	}
	return nil
}
