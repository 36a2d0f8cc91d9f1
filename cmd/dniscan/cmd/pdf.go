package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meza-digital/dniscan/internal/capture"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <file.pdf>",
	Short: "Scan the page images of a scanned PDF",
	Long: `Pdf extracts the embedded page images of a scanned PDF and runs one scan
pass per image. Use --pages to restrict which pages are processed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().StringSlice("pages", nil, "page selection, e.g. 1-3 or 2,5 (default all)")
	pdfCmd.Flags().String("export", "", "write recorded results to this .xlsx file")
	pdfCmd.Flags().StringSlice("lang", nil, "OCR language hints (default from config)")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetStringSlice("pages")
	src, err := capture.NewPDFSource(args[0], pages)
	if err != nil {
		return err
	}
	return scanAll(cmd, src)
}
