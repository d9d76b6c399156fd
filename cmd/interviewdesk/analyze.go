package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"interviewdesk/internal/config"
	"interviewdesk/internal/docextract"
	"interviewdesk/internal/llm"
	"interviewdesk/internal/service"
)

func newAnalyzeCmd() *cobra.Command {
	var transcriptPath, outlinePath, target, out string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a transcript against an outline with the configured model",
		Long: `Extract text from the transcript and outline, ask the configured model for a
structured comparison table and print the answer. When the answer contains a
table it is written to --out as xlsx (or csv with --csv).

Provider settings are read from INTERVIEWDESK_LLM_* variables or a .env file.

Example:
  interviewdesk analyze --transcript t.pdf --outline o.docx --target "了解续费动机" --out result.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log.SetFlags(cfg.Log.Flags())
			completer, err := llm.NewFromConfig(&cfg.LLM)
			if err != nil {
				return fmt.Errorf("llm provider unavailable: %w", err)
			}

			transcript, err := readUpload(transcriptPath)
			if err != nil {
				return err
			}
			outline, err := readUpload(outlinePath)
			if err != nil {
				return err
			}

			analysisSvc := service.NewAnalysisService(
				docextract.NewExtractor(cfg.Upload.MaxBytes()),
				completer,
				cfg.LLM.PrimaryConfig().Provider,
			)
			result, err := analysisSvc.Analyze(cmd.Context(), &service.AnalysisInput{
				Target:     target,
				Transcript: transcript,
				Outline:    outline,
			})
			if err != nil {
				return err
			}

			if err := printMarkdown(cmd.OutOrStdout(), result.Markdown); err != nil {
				return err
			}
			if !result.TableFound {
				fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
				return nil
			}
			if out == "" {
				return nil
			}
			return writeExport(cmd, service.NewExportService(&cfg.Export), &service.ExportInput{Table: result.Table}, out, asCSV)
		},
	}

	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "Transcript file (pdf, docx, txt)")
	cmd.Flags().StringVar(&outlinePath, "outline", "", "Outline file (docx, txt, pdf)")
	cmd.Flags().StringVar(&target, "target", "", "Interview goal")
	cmd.Flags().StringVar(&out, "out", "", "Write the table to this file")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write csv instead of xlsx")
	_ = cmd.MarkFlagRequired("transcript")
	_ = cmd.MarkFlagRequired("outline")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func readUpload(path string) (*service.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &service.Upload{Filename: filepath.Base(path), Data: data}, nil
}
