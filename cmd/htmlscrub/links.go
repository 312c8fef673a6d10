package htmlscrub

import (
	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/report"
	"github.com/htmlscrub/htmlscrub/internal/scrub"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

var flagLinksJSON bool

func init() {
	cmd := &cobra.Command{
		Use:   "links [file...]",
		Short: "List the src, href and cite values kept by the scrubber",
		RunE:  runLinks,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVar(&flagLinksJSON, "json", false, "emit JSON")
}

func runLinks(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	links := []types.Link{} // no `null` in JSON
	for _, name := range args {
		raw, _, err := readInput(cmd, []string{name})
		if err != nil {
			return err
		}
		path := ""
		if len(args) > 1 {
			path = name
		}
		for _, a := range scrub.Attributes(scrub.Scrub(raw)) {
			links = append(links, types.Link{Path: path, Kind: a.Kind.String(), Value: a.Value, Offset: a.Offset})
		}
	}
	if flagLinksJSON {
		return report.WriteJSON(cmd.OutOrStdout(), links)
	}
	return report.PrintLinks(cmd.OutOrStdout(), links)
}
