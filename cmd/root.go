// Package cmd provides the root command and CLI setup for linkdup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	"linkdup.dev/pkg/linkdup/internal/controller"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

var fileSystem adapter.FileSystem
var reportStore adapter.ReportStore
var inventoryWriter adapter.InventoryWriter

// newWorkflow builds the workflow reporting through ui. Tests replace it.
var newWorkflow func(ui controller.UI) domain.Workflow

// logFileFlag overrides the configured log file.
var logFileFlag string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fileSystem = adapter.NewLocalFileSystem()
	reportStore = adapter.NewReportStore()
	inventoryWriter = adapter.NewInventoryWriter()
	newWorkflow = func(ui controller.UI) domain.Workflow {
		return domain.NewWorkflow(fileSystem, reportStore, inventoryWriter, ui)
	}
}

const rootLongDescription = `linkdup finds files with identical content across one or more directory
trees and replaces the duplicates with hardlinks to a single copy.

Candidates are narrowed by size, then by a content hash, and confirmed by a
byte-for-byte comparison before anything on disk is touched.`

const runLongDescription = `Detect duplicate files under the given roots and merge each group into
hardlinks of one origin file.

Every confirmed group is printed to standard output as a quoted,
space-separated list of its paths before any file is changed. With --dry-run
nothing is changed at all.

Roots given first take precedence for --merge order and --mtime order.`

const indexLongDescription = `Scan the given roots and write a CSV inventory with one row per file:
path, st_ino, st_dev, st_nlink, st_size, st_mtime_ns and optionally a hash.`

const viewLongDescription = `Replay a report written by run --report: its groups are printed to standard
output in the same format as run, and its stage and merge summary to standard
error. The filesystem is not read beyond the report itself.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "linkdup",
		Short:        "Replace duplicate files with hardlinks",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file (rotated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
