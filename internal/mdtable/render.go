package mdtable

import (
	"bytes"
	"fmt"

	"github.com/nao1215/markdown"

	"interviewdesk/internal/domain"
)

// Render serializes table as a markdown pipe table. Extracting the result
// yields an equal table as long as no cell contains '|' or a newline.
func Render(table *domain.ParsedTable) (string, error) {
	if table == nil || len(table.Header) == 0 {
		return "", domain.ErrInvalidTable
	}

	rows := make([][]string, len(table.Rows))
	for i, r := range table.Rows {
		rows[i] = []string(r)
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)
	md.Table(markdown.TableSet{
		Header: []string(table.Header),
		Rows:   rows,
	})
	if err := md.Build(); err != nil {
		return "", fmt.Errorf("rendering markdown table: %w", err)
	}
	return buf.String(), nil
}
