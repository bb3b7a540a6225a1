package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linkdup.dev/pkg/linkdup/internal/controller"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

var (
	indexCSVFlag       string
	indexNormalizeFlag bool
	indexMinSizeFlag   int64
	indexMaxSizeFlag   int64
	indexHashFlag      string
	indexParallelFlag  int
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <root> [roots...] --csv <file>",
		Short: "Write a CSV inventory of the files under the given roots",
		Long:  indexLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := m.ParseDigest(viper.GetString(indexHashKey), true)
			if err != nil {
				return err
			}

			indexArgs := domain.IndexArgs{
				Roots:     parsePaths(args),
				Output:    m.Path(indexCSVFlag),
				Normalize: viper.GetBool(indexNormalizeKey),
				MinSize:   viper.GetInt64(indexMinSizeKey),
				MaxSize:   viper.GetInt64(indexMaxSizeKey),
				Digest:    digest,
				Workers:   indexParallelFlag,
			}

			if err := indexArgs.Validate(); err != nil {
				return err
			}

			wf := newWorkflow(controller.NewSimpleUI(cmd))

			return wf.Index(cmd.Context(), indexArgs)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&indexCSVFlag, csvFlagName, "", "output csv path")
	cobra.CheckErr(cmd.MarkFlagRequired(csvFlagName))

	flags.BoolVar(&indexNormalizeFlag, normalizeFlagName, viper.GetBool(indexNormalizeKey), "resolve symlinks and record real paths")
	bindFlagToConfig(flags.Lookup(normalizeFlagName), indexNormalizeKey)

	flags.Int64Var(&indexMinSizeFlag, minSizeFlagName, viper.GetInt64(indexMinSizeKey), "ignore files of this size or smaller")
	bindFlagToConfig(flags.Lookup(minSizeFlagName), indexMinSizeKey)

	flags.Int64Var(&indexMaxSizeFlag, maxSizeFlagName, viper.GetInt64(indexMaxSizeKey), "ignore files of this size or larger")
	bindFlagToConfig(flags.Lookup(maxSizeFlagName), indexMaxSizeKey)

	flags.StringVar(&indexHashFlag, hashFlagName, viper.GetString(indexHashKey), "hash column: none, md5, sha256, blake3 or xxhash")
	bindFlagToConfig(flags.Lookup(hashFlagName), indexHashKey)

	flags.IntVarP(&indexParallelFlag, parallelFlagName, "p", defaultParallel, "number of files hashed concurrently")

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
