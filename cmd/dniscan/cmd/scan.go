package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meza-digital/dniscan/internal/capture"
	"github.com/meza-digital/dniscan/internal/export"
	"github.com/meza-digital/dniscan/internal/pipeline"
)

var scanCmd = &cobra.Command{
	Use:   "scan [files or directories...]",
	Short: "Scan card images from files",
	Long: `Scan runs one pass per input image: locate the card, straighten it,
read it, and print the extracted fields. Directories are expanded to the
image files they contain.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("export", "", "write recorded results to this .xlsx file")
	scanCmd.Flags().StringSlice("lang", nil, "OCR language hints (default from config)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	src, err := capture.NewStillSource(args)
	if err != nil {
		return err
	}
	return scanAll(cmd, src)
}

// scanAll drains a finite source one pass at a time, then exports if asked.
func scanAll(cmd *cobra.Command, src capture.FrameSource) error {
	cfg := getConfig()
	table := pipeline.NewTable()

	langs, _ := cmd.Flags().GetStringSlice("lang")
	orch, err := pipeline.NewBuilder().
		WithConfig(cfg.PipelineConfig()).
		WithSource(src).
		WithLanguages(langs).
		WithForm(newConsoleForm(cmd.OutOrStdout(), table)).
		Build()
	if err != nil {
		return err
	}
	defer func() { _ = orch.Close() }()

	for {
		if _, err := orch.ScanOnce(cmd.Context()); err != nil {
			if errors.Is(err, capture.ErrExhausted) {
				break
			}
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "registros: %d\n", table.Len())
	return maybeExport(cmd, table)
}

// maybeExport writes the table when --export was given, falling back to the
// configured path for an empty flag value on commands that default it.
func maybeExport(cmd *cobra.Command, table *pipeline.Table) error {
	path, err := cmd.Flags().GetString("export")
	if err != nil || path == "" {
		return nil
	}
	return export.WriteXLSX(path, table)
}
