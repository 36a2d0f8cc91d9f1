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

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Scan cards shown on a connected display",
	Long: `Screen grabs the display periodically and runs a scan pass on each grab.
Point a camera preview window at the card and let auto-scan pick it up.
Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().Int("display", 0, "display index to capture")
	screenCmd.Flags().String("export", "", "write recorded results to this .xlsx file on exit")
	screenCmd.Flags().StringSlice("lang", nil, "OCR language hints (default from config)")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	display, _ := cmd.Flags().GetInt("display")
	src, err := capture.NewScreenSource(display)
	if err != nil {
		return err
	}

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

	if err := orch.StartAutoScan(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	orch.StopAutoScan()

	fmt.Fprintf(cmd.OutOrStdout(), "registros: %d\n", table.Len())
	return maybeExport(cmd, table)
}
