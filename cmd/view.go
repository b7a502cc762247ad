package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/excat/internal/domain"
	m "github.com/mouse-blink/excat/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [catalog]",
		Short: "Browse a previously written exception catalog",
		Long:  "Browse a previously written exception catalog. Defaults to the configured output path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := m.Path(cfg.Output.Path)
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.View(domain.ViewArgs{Catalog: path})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
