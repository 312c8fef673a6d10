package htmlscrub

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/scrub"
)

var flagHashAlgo string

func init() {
	hashCmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Digest the visible content of HTML documents",
		Long:  "Digest the visible content of HTML documents. Output lines are '<hex>  <name>'; '-' or no argument reads stdin.",
		RunE:  runHash,
	}
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().StringVar(&flagHashAlgo, "algo", "", "digest algorithm (default sha256)")

	compareCmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Exit 0 when two documents have the same visible content, 1 otherwise",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	}
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&flagHashAlgo, "algo", "", "digest algorithm (default sha256)")
}

func hashAlgorithm() string {
	gcfg, lcfg := loadConfigs(".")
	return digest.Normalize(pickString(flagHashAlgo, lcfg.Algorithm, gcfg.Algorithm))
}

func hashFile(cmd *cobra.Command, name, algo string) ([]byte, error) {
	raw, _, err := readInput(cmd, []string{name})
	if err != nil {
		return nil, err
	}
	return scrub.Hash(raw, algo)
}

func runHash(cmd *cobra.Command, args []string) error {
	algo := hashAlgorithm()
	if !digest.Supported(algo) {
		return fmt.Errorf("%w %q", digest.ErrUnknownAlgorithm, algo)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		sum, err := hashFile(cmd, name, algo)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum), name)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	algo := hashAlgorithm()
	a, err := hashFile(cmd, args[0], algo)
	if err != nil {
		return err
	}
	b, err := hashFile(cmd, args[1], algo)
	if err != nil {
		return err
	}
	if bytes.Equal(a, b) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "visible content identical")
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "visible content differs")
	verbosef(cmd, "%s  %s\n%s  %s", hex.EncodeToString(a), args[0], hex.EncodeToString(b), args[1])
	return exitCode(1)
}
