package htmlscrub

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/audit"
	"github.com/htmlscrub/htmlscrub/internal/report"
)

var (
	flagHistoryPath   string
	flagHistoryJSON   bool
	flagHistoryDelete int
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous scans of a tree",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "root the scans were run against")
	cmd.Flags().BoolVar(&flagHistoryJSON, "json", false, "emit JSON")
	cmd.Flags().IntVar(&flagHistoryDelete, "delete", -1, "remove the record with this index")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	root, err := filepath.Abs(flagHistoryPath)
	if err != nil {
		return err
	}
	log := audit.New(root)
	if flagHistoryDelete >= 0 {
		if err := log.Delete(flagHistoryDelete); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d.\n", flagHistoryDelete)
		return nil
	}
	records, err := log.History()
	if err != nil {
		return fmt.Errorf("no history for %s: %w", root, err)
	}
	if flagHistoryJSON {
		return report.WriteJSON(cmd.OutOrStdout(), records)
	}
	return report.PrintHistory(cmd.OutOrStdout(), records)
}
