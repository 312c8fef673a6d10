package htmlscrub

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/report"
	"github.com/htmlscrub/htmlscrub/internal/scrub"
)

var (
	flagPlain        bool
	flagShowMarkers  bool
	flagMarkerFormat string
	flagPretty       bool
	flagCopy         bool
	flagOutput       string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scrub [file|-]",
		Short: "Print the visible content of an HTML document",
		Long: `Print the visible content of an HTML document. Captured src, href and cite
values are delimited by control bytes 0x18-0x1D unless --plain or
--show-markers is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScrub,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagPlain, "plain", false, "drop captured attribute values, keep text only")
	cmd.Flags().BoolVar(&flagShowMarkers, "show-markers", false, "render captured values as readable text")
	cmd.Flags().StringVar(&flagMarkerFormat, "marker-format", "", "format for --show-markers with two %s verbs: kind, value")
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "like --show-markers, styled when stdout is a terminal")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "also copy the result to the clipboard")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write to file instead of stdout")
}

func runScrub(cmd *cobra.Command, args []string) error {
	raw, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	gcfg, lcfg := loadConfigs(".")
	sc := lcfg.GetScrubConfig()
	if lcfg.Scrub == nil {
		sc = gcfg.GetScrubConfig()
	}

	format := sc.GetMarkerFormat()
	if flagMarkerFormat != "" {
		format = flagMarkerFormat
	}
	// explicit flags win over the config file's defaults
	var render func([]byte) []byte
	switch {
	case flagPlain:
		render = scrub.StripAttributes
	case flagPretty:
		color := flagOutput == "" && !noColor() && report.IsTerminal(cmd.OutOrStdout())
		render = func(b []byte) []byte { return report.ShowMarkers(b, format, color) }
	case flagShowMarkers:
		render = func(b []byte) []byte { return report.ShowMarkers(b, format, false) }
	case sc.IsPlain():
		render = scrub.StripAttributes
	case sc.IsShowMarkers():
		render = func(b []byte) []byte { return report.ShowMarkers(b, format, false) }
	}

	dst := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}

	if render == nil && !flagCopy {
		n, err := scrub.ScrubTo(dst, raw)
		verbosef(cmd, "%s: %d raw bytes, %d visible bytes written", name, len(raw), n)
		return err
	}

	out := scrub.Scrub(raw)
	verbosef(cmd, "%s: %d raw bytes, %d visible bytes, %d attributes", name, len(raw), len(out), len(scrub.Attributes(out)))
	if render != nil {
		out = render(out)
	}
	if flagCopy {
		if err := clipboard.WriteAll(string(out)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		verbosef(cmd, "copied %d bytes to clipboard", len(out))
	}
	_, err = dst.Write(out)
	return err
}
