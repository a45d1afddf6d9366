package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/visual-editor-imports/pkg/config"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/ensurer"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/errors"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/version"
)

const (
	UseDescription   = "vei [flags] PATH..."
	ShortDescription = "Visual editor imports - ensure components import their attribute helper"
	LongDescription  = `vei adds the visual editor attribute helper import to component sources.

For every PATH that references the helper, vei makes sure the file imports it
from the bindings module and moves that import to a canonical position:

1. just after the last regular (non-type) import
2. in front of the grouped "import type { ... } from '../types';" block
   whenever rule 1 would land inside it

Files that never mention the helper are left untouched. PATH may also be a
directory, in which case all .ts, .tsx, .js, .jsx, .mjs and .cjs files below
it are processed, skipping node_modules and hidden directories.

Settings can also come from VEI_HELPER, VEI_BINDINGS_MODULE or a .vei.yaml
file in the working directory.`
)

var (
	configPath  string
	dryRun      bool
	check       bool
	verbose     bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         cobra.ArbitraryArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: .vei.yaml in the working directory)")
	rootCmd.PersistentFlags().String("helper", ensurer.DefaultHelper, "Helper identifier whose usage requires the import")
	rootCmd.PersistentFlags().String("bindings-module", ensurer.DefaultBindingsModule, "Bindings module location, relative to the working directory")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the changes as a diff instead of writing files")
	rootCmd.PersistentFlags().BoolVar(&check, "check", false, "Fail if any file would be changed, without writing")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log per-file results to stderr")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "check")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func mode() ensurer.Mode {
	switch {
	case dryRun:
		return ensurer.ModeDryRun
	case check:
		return ensurer.ModeCheck
	default:
		return ensurer.ModeWrite
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger()
	e := ensurer.New(ensurer.EnsurerConfig{
		Helper:         cfg.Helper,
		BindingsModule: cfg.BindingsModule,
		Mode:           mode(),
		Out:            cmd.OutOrStdout(),
		Logger:         logger,
	})

	results, err := e.ProcessPaths(args)
	if err != nil {
		return err
	}

	var touched, inserted int
	for _, res := range results {
		if res.UsesHelper {
			touched++
		}
		if res.Inserted {
			inserted++
		}
	}
	logger.Info(errors.LogMsgSummary, "files", len(results), "using_helper", touched, "inserted", inserted)
	return nil
}

func Execute(buildVersion string) error {
	version.SetFromBuildInfo(buildVersion)
	return rootCmd.Execute()
}
