package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linkdup.dev/pkg/linkdup/internal/controller"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

var (
	runDryRunFlag             bool
	runNormalizeFlag          bool
	runGroupByRelativeFlag    bool
	runMinSizeFlag            int64
	runMaxSizeFlag            int64
	runMergeFlag              string
	runMtimeFlag              string
	runSmartHashFlag          bool
	runSmartHashThresholdFlag int64
	runDigestFlag             string
	runParallelFlag           int
	runReportFlag             string
	runTUIFlag                bool
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <root> [roots...]",
		Short: "Find duplicate files and replace them with hardlinks",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dedupArgs, err := dedupArgsFromConfig(args)
			if err != nil {
				return err
			}

			if err := dedupArgs.Validate(); err != nil {
				return err
			}

			useTUI := viper.GetBool(runTUIKey) && controller.IsTTY(cmd.ErrOrStderr())
			wf := newWorkflow(controller.NewUI(cmd, useTUI))

			_, err = wf.Dedup(cmd.Context(), dedupArgs)

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolVar(&runDryRunFlag, dryRunFlagName, false, "detect and print duplicate groups without changing anything")

	flags.BoolVar(&runNormalizeFlag, normalizeFlagName, viper.GetBool(runNormalizeKey), "resolve symlinks and record real paths")
	bindFlagToConfig(flags.Lookup(normalizeFlagName), runNormalizeKey)

	flags.BoolVar(&runGroupByRelativeFlag, groupByRelativeFlagName, viper.GetBool(runGroupByRelativeKey), "only match files at the same path relative to their root")
	bindFlagToConfig(flags.Lookup(groupByRelativeFlagName), runGroupByRelativeKey)

	flags.Int64Var(&runMinSizeFlag, minSizeFlagName, viper.GetInt64(runMinSizeKey), "ignore files of this size or smaller")
	bindFlagToConfig(flags.Lookup(minSizeFlagName), runMinSizeKey)

	flags.Int64Var(&runMaxSizeFlag, maxSizeFlagName, viper.GetInt64(runMaxSizeKey), "ignore files of this size or larger")
	bindFlagToConfig(flags.Lookup(maxSizeFlagName), runMaxSizeKey)

	flags.StringVar(&runMergeFlag, mergeFlagName, viper.GetString(runMergeKey), "origin selection: max (most shared inode) or order (first root wins)")
	bindFlagToConfig(flags.Lookup(mergeFlagName), runMergeKey)

	flags.StringVar(&runMtimeFlag, mtimeFlagName, viper.GetString(runMtimeKey), "timestamp policy: order, newest or merge")
	bindFlagToConfig(flags.Lookup(mtimeFlagName), runMtimeKey)

	flags.BoolVar(&runSmartHashFlag, smartHashFlagName, viper.GetBool(runSmartHashKey), "sample large files at their midpoint instead of hashing them fully")
	bindFlagToConfig(flags.Lookup(smartHashFlagName), runSmartHashKey)

	flags.Int64Var(&runSmartHashThresholdFlag, smartHashThresholdFlagName, viper.GetInt64(runSmartHashThresholdKey), "size from which --smarthash samples instead of hashing")
	bindFlagToConfig(flags.Lookup(smartHashThresholdFlagName), runSmartHashThresholdKey)

	flags.StringVar(&runDigestFlag, digestFlagName, viper.GetString(runDigestKey), "content digest: blake3, sha256, md5 or xxhash")
	bindFlagToConfig(flags.Lookup(digestFlagName), runDigestKey)

	flags.IntVarP(&runParallelFlag, parallelFlagName, "p", viper.GetInt(runParallelKey), "number of files hashed concurrently")
	bindFlagToConfig(flags.Lookup(parallelFlagName), runParallelKey)

	flags.StringVar(&runReportFlag, reportFlagName, "", "write a YAML run report to this file")

	flags.BoolVar(&runTUIFlag, tuiFlagName, viper.GetBool(runTUIKey), "show an interactive progress view when stderr is a terminal")
	bindFlagToConfig(flags.Lookup(tuiFlagName), runTUIKey)
}

func dedupArgsFromConfig(args []string) (domain.DedupArgs, error) {
	merge, err := m.ParseMergeStrategy(viper.GetString(runMergeKey))
	if err != nil {
		return domain.DedupArgs{}, err
	}

	mtime, err := m.ParseMtimePolicy(viper.GetString(runMtimeKey))
	if err != nil {
		return domain.DedupArgs{}, err
	}

	digest, err := m.ParseDigest(viper.GetString(runDigestKey), false)
	if err != nil {
		return domain.DedupArgs{}, err
	}

	return domain.DedupArgs{
		Roots:              parsePaths(args),
		DryRun:             runDryRunFlag,
		Normalize:          viper.GetBool(runNormalizeKey),
		Relative:           viper.GetBool(runGroupByRelativeKey),
		MinSize:            viper.GetInt64(runMinSizeKey),
		MaxSize:            viper.GetInt64(runMaxSizeKey),
		SmartHash:          viper.GetBool(runSmartHashKey),
		SmartHashThreshold: viper.GetInt64(runSmartHashThresholdKey),
		Digest:             digest,
		Merge:              merge,
		Mtime:              mtime,
		Workers:            viper.GetInt(runParallelKey),
		Report:             m.Path(runReportFlag),
	}, nil
}
