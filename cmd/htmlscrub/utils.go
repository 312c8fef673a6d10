package htmlscrub

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlscrub/htmlscrub/internal/config"
	"github.com/htmlscrub/htmlscrub/internal/engine"
)

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// loadConfigs returns the global and repo-local config files for root. A
// missing file yields the zero FileConfig.
func loadConfigs(root string) (gcfg, lcfg config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	return gcfg, lcfg
}

// batchFlags are shared by the commands that walk a tree.
type batchFlags struct {
	path            string
	include         string
	exclude         string
	ext             string
	maxBytes        int64
	algo            string
	noCache         bool
	defaultExcludes bool
}

func (b *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.path, "path", "p", ".", "root of the tree to scan")
	cmd.Flags().StringVar(&b.include, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&b.exclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&b.ext, "ext", "", "comma-separated document extensions (default .html,.htm,.xhtml,.shtml)")
	cmd.Flags().Int64Var(&b.maxBytes, "max-bytes", 0, "skip documents larger than this (0 = no limit)")
	cmd.Flags().StringVar(&b.algo, "algo", "", "digest algorithm (see 'htmlscrub algorithms')")
	cmd.Flags().BoolVar(&b.noCache, "no-cache", false, "disable incremental digest cache")
	cmd.Flags().BoolVar(&b.defaultExcludes, "default-excludes", true, "skip node_modules, vendor, minified pages, etc.")
}

// engineConfig resolves flags against config files: CLI > local > global.
func (b *batchFlags) engineConfig(cmd *cobra.Command) (engine.Config, error) {
	abs, err := filepath.Abs(b.path)
	if err != nil {
		return engine.Config{}, err
	}
	gcfg, lcfg := loadConfigs(abs)
	defaultExcludes := b.defaultExcludes
	if !cmd.Flags().Changed("default-excludes") {
		switch {
		case lcfg.DefaultExcludes != nil:
			defaultExcludes = *lcfg.DefaultExcludes
		case gcfg.DefaultExcludes != nil:
			defaultExcludes = *gcfg.DefaultExcludes
		}
	}
	return engine.Config{
		Root:            abs,
		IncludeGlobs:    pickString(b.include, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(b.exclude, lcfg.Exclude, gcfg.Exclude),
		Extensions:      engine.ParseExtensions(pickString(b.ext, lcfg.Extensions, gcfg.Extensions)),
		MaxBytes:        pickInt64(b.maxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		Algorithm:       pickString(b.algo, lcfg.Algorithm, gcfg.Algorithm),
		DefaultExcludes: defaultExcludes,
		NoCache:         pickBool(b.noCache, lcfg.NoCache, gcfg.NoCache),
	}, nil
}

// noColor resolves --no-color against config files for the current directory.
func noColor() bool {
	gcfg, lcfg := loadConfigs(".")
	return pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
}

// readInput returns the document named by args[0], or stdin when args is
// empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return b, "-", err
	}
	b, err := os.ReadFile(args[0])
	return b, args[0], err
}
