package cmd

import (
	"github.com/spf13/cobra"

	"linkdup.dev/pkg/linkdup/internal/controller"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.yaml>",
		Short: "View a report written by run --report",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf := newWorkflow(controller.NewSimpleUI(cmd))

			_, err := wf.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
