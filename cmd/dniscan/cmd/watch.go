package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meza-digital/dniscan/internal/capture"
	"github.com/meza-digital/dniscan/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Scan card images dropped into a directory",
	Long: `Watch processes every image file that lands in the directory as its own
scan pass. Runs until interrupted; pass --export to write the session
table on exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("export", "", "write recorded results to this .xlsx file on exit")
	watchCmd.Flags().StringSlice("lang", nil, "OCR language hints (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	src, err := capture.NewWatchSource(args[0])
	if err != nil {
		return err
	}
	return runUntilInterrupt(cmd, src)
}

// runUntilInterrupt loops passes over a blocking source until Ctrl+C, then
// exports whatever the session recorded.
func runUntilInterrupt(cmd *cobra.Command, src capture.FrameSource) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		if _, err := orch.ScanOnce(ctx); err != nil {
			break
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "registros: %d\n", table.Len())
	return maybeExport(cmd, table)
}
