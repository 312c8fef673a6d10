package htmlscrub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/htmlscrub/htmlscrub/internal/config"
	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/files"
)

var (
	cfgOutput          string
	cfgAlgo            string
	cfgExt             string
	cfgInclude         string
	cfgExclude         string
	cfgThreads         int
	cfgMaxBytes        int64
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgGitignore       bool
	cfgForce           bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .htmlscrub.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", config.LocalNames[0], "output file path")
	initCmd.Flags().StringVar(&cfgAlgo, "algo", digest.Default, "digest algorithm")
	initCmd.Flags().StringVar(&cfgExt, "ext", "", "comma-separated document extensions")
	initCmd.Flags().StringVar(&cfgInclude, "include", "", "comma-separated include globs")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "comma-separated exclude globs")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=GOMAXPROCS)")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 0, "skip documents larger than this (0 = no limit)")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default exclude patterns")
	initCmd.Flags().BoolVar(&cfgGitignore, "gitignore", true, "add generated cache files to .gitignore")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	algo := digest.Normalize(cfgAlgo)
	if !digest.Supported(algo) {
		return fmt.Errorf("%w %q", digest.ErrUnknownAlgorithm, cfgAlgo)
	}
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}

	fc := config.FileConfig{
		Include:         optStrPtr(cfgInclude),
		Exclude:         optStrPtr(cfgExclude),
		Extensions:      optStrPtr(cfgExt),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		Threads:         intPtr(cfgThreads),
		Algorithm:       strPtr(algo),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
		NoColor:         boolPtr(cfgNoColor),
		Scrub: &config.ScrubConfig{
			MarkerFormat: strPtr(config.DefaultMarkerFormat),
		},
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)

	if cfgGitignore {
		root := filepath.Dir(cfgOutput)
		added, err := files.IgnoreGenerated(root)
		if err != nil {
			return fmt.Errorf("update .gitignore: %w", err)
		}
		if len(added) > 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Added to .gitignore:", strings.Join(added, ", "))
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
