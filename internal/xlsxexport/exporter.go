package xlsxexport

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"interviewdesk/internal/domain"
)

// DefaultSheetName is used when the caller does not name the sheet.
const DefaultSheetName = "分析结果"

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
	minColWidth  = 12.0
	maxColWidth  = 60.0
)

// Export writes table into a single-sheet workbook and returns its bytes.
// The header becomes row 1 and data rows follow in their original order.
// Every cell is stored as a string, so numeric- or date-looking text is never coerced.
func Export(table *domain.ParsedTable, sheetName string) ([]byte, error) {
	if table == nil || len(table.Header) == 0 {
		return nil, domain.ErrInvalidTable
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SanitizeSheetName(sheetName)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if err := writeRow(f, sheet, 1, table.Header); err != nil {
		return nil, err
	}
	for i, row := range table.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := decorate(f, sheet, table); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells domain.TableRow) error {
	for col, val := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("resolving cell (%d,%d): %w", col+1, rowNum, err)
		}
		if err := f.SetCellStr(sheet, cell, val); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}

// decorate applies presentation only: a bold frozen header and column widths.
func decorate(f *excelize.File, sheet string, table *domain.ParsedTable) error {
	width := table.Width()
	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	for col := 1; col <= width; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidth(table, col-1)); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}
	return nil
}

// columnWidth estimates a readable width from the longest cell, counting
// wide (CJK) runes twice.
func columnWidth(table *domain.ParsedTable, col int) float64 {
	longest := displayWidth(table.Header[col])
	for _, r := range table.Rows {
		if w := displayWidth(r[col]); w > longest {
			longest = w
		}
	}
	w := float64(longest) + 2
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		if utf8.RuneLen(r) > 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// invalidSheetChars matches characters Excel forbids in sheet names.
var invalidSheetChars = regexp.MustCompile(`[\[\]:*?/\\]`)

// SanitizeSheetName makes name acceptable to Excel: forbidden characters
// become '_', the result is cut to 31 characters and surrounding apostrophes
// are removed. An empty result falls back to DefaultSheetName.
func SanitizeSheetName(name string) string {
	s := invalidSheetChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if utf8.RuneCountInString(s) > maxSheetName {
		s = string([]rune(s)[:maxSheetName])
	}
	// Trim after cutting: the cut can expose an apostrophe at the end.
	s = strings.Trim(s, "'")
	if s == "" {
		return DefaultSheetName
	}
	return s
}

// BuildFilename returns a download filename of the form
// {sanitized_name}_{YYYY-MM-DD}.{ext}.
func BuildFilename(name string, format domain.ExportFormat) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "analysis"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, time.Now().Format("2006-01-02"), format)
}

// unsafeFilenameChars matches characters that are not letters, digits, hyphen or underscore.
var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Letters from
// any script are kept so Chinese titles survive; everything else becomes '_'.
func SanitizeFilename(name string) string {
	s := unsafeFilenameChars.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if utf8.RuneCountInString(s) > 100 {
		s = string([]rune(s)[:100])
	}
	return s
}
