package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"interviewdesk/internal/config"
	"interviewdesk/internal/service"
	"interviewdesk/internal/xlsxexport"
)

func newConvertCmd() *cobra.Command {
	var in, out, sheet string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a saved markdown answer into a spreadsheet",
		Long: `Read a markdown answer, extract its first table and write it as xlsx or csv.
No model is called. Reads stdin when --in is "-".

Example:
  interviewdesk convert --in answer.md --out result.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if in == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(in)
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", in, err)
			}

			exportSvc := service.NewExportService(&config.ExportConfig{
				SheetName: xlsxexport.DefaultSheetName,
				CSVBOM:    true,
			})
			return writeExport(cmd, exportSvc, &service.ExportInput{Markdown: string(raw), Sheet: sheet}, out, asCSV)
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Markdown answer file, or - for stdin")
	cmd.Flags().StringVar(&out, "out", "", "Output file; .csv selects csv")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write csv instead of xlsx")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
