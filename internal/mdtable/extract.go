// Package mdtable pulls a pipe-delimited markdown table out of free-form
// model output and turns it into a rectangular domain.ParsedTable.
//
// Splitting is purely positional on the literal '|' character. A pipe inside
// cell text is treated as a delimiter like any other.
package mdtable

import (
	"strings"

	"interviewdesk/internal/domain"
)

const delimiter = "|"

// Extract scans raw for a markdown table and returns it with every data row
// normalized to the header width. It returns domain.ErrTableNotFound when
// fewer than one header and one data row are present.
func Extract(raw string) (*domain.ParsedTable, error) {
	lines := candidateLines(raw)
	if len(lines) < 2 {
		return nil, domain.ErrTableNotFound
	}

	header := splitRow(lines[0])
	width := len(header)
	if width == 0 {
		return nil, domain.ErrTableNotFound
	}

	table := &domain.ParsedTable{
		Header: header,
		Rows:   make([]domain.TableRow, 0, len(lines)-1),
	}
	for _, line := range lines[1:] {
		row := splitRow(line)
		if len(row) != width {
			row = normalize(row, width)
			table.NormalizedRows++
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// candidateLines returns the pipe-led lines of raw, minus separator rows.
func candidateLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, delimiter) {
			continue
		}
		if isSeparator(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// isSeparator reports whether line is a header-separator row such as
// |---|:--:|. Every cell must hold only dashes, colons and spaces, and at
// least one dash must appear so that an all-empty row is still data.
func isSeparator(line string) bool {
	cells := splitRow(line)
	if len(cells) == 0 {
		return false
	}
	sawDash := false
	for _, c := range cells {
		for _, r := range c {
			switch r {
			case '-':
				sawDash = true
			case ':', ' ', '\t':
			default:
				return false
			}
		}
	}
	return sawDash
}

// splitRow splits a trimmed pipe-led line into trimmed cells, dropping the
// empty cells produced by the opening and closing pipes.
func splitRow(line string) domain.TableRow {
	parts := strings.Split(line, delimiter)
	cells := make(domain.TableRow, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" && strings.HasSuffix(line, delimiter) {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// normalize pads row with empty cells or truncates it to width.
func normalize(row domain.TableRow, width int) domain.TableRow {
	out := make(domain.TableRow, width)
	copy(out, row)
	return out
}
