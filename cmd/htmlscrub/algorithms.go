package htmlscrub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/digest"
)

func init() {
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range digest.Names() {
				size, err := digest.Size(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == digest.Default {
					marker = " (default)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %4d bits%s\n", name, size*8, marker)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
