package htmlscrub

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagThreads int
	flagNoColor bool
	flagVerbose bool

	version = "0.1.0"
)

// exitCode ends the process with a status but no error message. Commands
// return it for "different" results that are not failures of the tool.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// rootCmd is the base Cobra command for the htmlscrub CLI.
var rootCmd = &cobra.Command{
	Use:           "htmlscrub",
	Short:         "Reduce HTML to its visible content",
	Long:          "htmlscrub strips markup, scripts and styles from HTML, keeps src/href/cite values between marker bytes, and digests what is left so that markup-only edits can be told apart from content edits.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the htmlscrub CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print progress details to stderr")
}

// verbosef writes a diagnostic line to the command's stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if flagVerbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
