package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/excat/internal/domain"
)

var codesSourceFlag string
var codesDefinitionsFlag string
var codesEncodingFlag string
var codesLimitFlag int

// codesCmd represents the codes command.
var codesCmd = newCodesCmd()

func newCodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the resolved error code registry",
		Long: `Codes builds the error code registry exactly as scan does, from the
definitions file and the override table, and lists it in definition order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Codes(domain.CodesArgs{
				RegistryArgs: registryArgs(cmd, codesSourceFlag, codesDefinitionsFlag, codesEncodingFlag),
				Limit:        codesLimitFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&codesSourceFlag, "source-directory", "s", "", "path to the source tree")
	cmd.Flags().StringVarP(&codesDefinitionsFlag, "definitions", "d", "", "error code definitions file, relative to the source directory unless absolute")
	cmd.Flags().StringVar(&codesEncodingFlag, "encoding", "", "definitions text encoding (default from config)")
	cmd.Flags().IntVarP(&codesLimitFlag, "limit", "n", domain.SampleSize, "number of codes to show (0 for all)")
	_ = cmd.MarkFlagRequired("source-directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
