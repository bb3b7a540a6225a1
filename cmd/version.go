package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the linkdup build",
		Long:  "Print the module version, the VCS revision linkdup was built from, and the Go toolchain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := readBuildInfo()
			if !ok {
				cmd.Println("linkdup version unknown")
				return
			}

			version := info.Main.Version
			if version == "" {
				version = "(devel)"
			}

			cmd.Printf("linkdup %s\n", version)
			cmd.Printf("module\t%s\n", info.Main.Path)

			if revision := buildSetting(info, "vcs.revision"); revision != "" {
				if buildSetting(info, "vcs.modified") == "true" {
					revision += " (modified)"
				}

				cmd.Printf("commit\t%s\n", revision)
			}

			cmd.Printf("go\t%s\n", info.GoVersion)
		},
	}
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
