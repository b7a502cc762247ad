package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/excat/internal/domain"
	m "github.com/mouse-blink/excat/internal/model"
)

var scanSourceFlag string
var scanOutputFlag string
var scanDefinitionsFlag string
var scanParallelFlag int
var scanKeywordFlags []string
var scanExcludeFlags []string
var scanEncodingFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a source tree and write the exception catalog",
		Long: `Scan walks the source directory, extracts every throw Exception(...) site
and writes the catalog as JSON. Files that cannot be read or decoded are logged
and skipped; codes missing from the registry are logged and recorded as 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.ScanArgs{
				RegistryArgs: registryArgs(cmd, scanSourceFlag, scanDefinitionsFlag, scanEncodingFlag),
				Output:       m.Path(cfg.Output.Path),
				Keywords:     cfg.Scan.Keywords,
				Discover:     cfg.DiscoverOptions(),
				Threads:      cfg.Scan.Parallel,
			}

			if cmd.Flags().Changed("output-file") {
				args.Output = m.Path(scanOutputFlag)
			}

			if cmd.Flags().Changed("parallel") {
				args.Threads = scanParallelFlag
			}

			if len(scanKeywordFlags) > 0 {
				args.Keywords = scanKeywordFlags
			}

			if len(scanExcludeFlags) > 0 {
				args.Discover.Ignore = append(append([]string(nil), args.Discover.Ignore...), scanExcludeFlags...)
			}

			_, err := workflow.Scan(cmd.Context(), args)

			return err
		},
	}
	cmd.Flags().StringVarP(&scanSourceFlag, "source-directory", "s", "", "path to the source tree to scan")
	cmd.Flags().StringVarP(&scanOutputFlag, "output-file", "o", "", "path to the output JSON file (default from config)")
	cmd.Flags().StringVarP(&scanDefinitionsFlag, "definitions", "d", "", "error code definitions file, relative to the source directory unless absolute")
	cmd.Flags().IntVarP(&scanParallelFlag, "parallel", "p", 1, "number of parallel extraction workers")
	cmd.Flags().StringArrayVarP(&scanKeywordFlags, "keyword", "k", nil, "exception class name recognised after throw (can be repeated)")
	cmd.Flags().StringArrayVarP(&scanExcludeFlags, "exclude", "x", nil, "skip files matching glob (can be repeated)")
	cmd.Flags().StringVar(&scanEncodingFlag, "encoding", "", "source text encoding (default from config)")
	_ = cmd.MarkFlagRequired("source-directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

// registryArgs merges registry-related flags over the loaded config.
func registryArgs(cmd *cobra.Command, source, definitions, encoding string) domain.RegistryArgs {
	args := domain.RegistryArgs{
		Root:        m.Path(source),
		Definitions: m.Path(cfg.Registry.Definitions),
		Overrides:   cfg.OverrideEntries(),
		Encoding:    cfg.Scan.Encoding,
	}

	if cmd.Flags().Changed("definitions") {
		args.Definitions = m.Path(definitions)
	}

	if cmd.Flags().Changed("encoding") {
		args.Encoding = encoding
	}

	return args
}
