package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"interviewdesk/internal/service"
)

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(w io.Writer, md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(md); rerr == nil {
			md = rendered
		}
	}
	_, err = fmt.Fprintln(w, md)
	return err
}

// writeExport encodes the table from input and writes it to path.
func writeExport(cmd *cobra.Command, svc service.ExportService, input *service.ExportInput, path string, asCSV bool) error {
	export := svc.ExportXLSX
	if asCSV || strings.EqualFold(filepath.Ext(path), ".csv") {
		export = svc.ExportCSV
	}

	artifact, err := export(cmd.Context(), input)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", path, len(artifact.Data))
	return nil
}
