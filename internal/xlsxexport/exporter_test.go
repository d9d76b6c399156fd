package xlsxexport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"interviewdesk/internal/domain"
)

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExport_HeaderAndDataRows(t *testing.T) {
	table := &domain.ParsedTable{
		Header: domain.TableRow{"类型", "问题", "摘要"},
		Rows:   []domain.TableRow{{"大纲对应", "满意度", "价格偏高"}},
	}

	data, err := Export(table, "")
	require.NoError(t, err)

	rows := readRows(t, data, DefaultSheetName)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"类型", "问题", "摘要"}, rows[0])
	assert.Equal(t, []string{"大纲对应", "满意度", "价格偏高"}, rows[1])
}

func TestExport_NoTypeCoercion(t *testing.T) {
	table := &domain.ParsedTable{
		Header: domain.TableRow{"数量", "日期", "编号"},
		Rows:   []domain.TableRow{{"3", "2024-01-02", "007"}},
	}

	data, err := Export(table, "结果")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	for _, cell := range []string{"A2", "B2", "C2"} {
		typ, err := f.GetCellType("结果", cell)
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeNumber, typ, cell)
		assert.NotEqual(t, excelize.CellTypeDate, typ, cell)
	}

	val, err := f.GetCellValue("结果", "C2")
	require.NoError(t, err)
	assert.Equal(t, "007", val)
	val, err = f.GetCellValue("结果", "A2")
	require.NoError(t, err)
	assert.Equal(t, "3", val)
}

func TestExport_HeaderOnly(t *testing.T) {
	table := &domain.ParsedTable{Header: domain.TableRow{"a", "b"}}

	data, err := Export(table, "only")
	require.NoError(t, err)

	rows := readRows(t, data, "only")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b"}, rows[0])
}

func TestExport_PreservesOrderAndDuplicates(t *testing.T) {
	table := &domain.ParsedTable{
		Header: domain.TableRow{"k", "v"},
		Rows: []domain.TableRow{
			{"z", "1"},
			{"a", "2"},
			{"z", "1"},
		},
	}

	data, err := Export(table, "s")
	require.NoError(t, err)

	rows := readRows(t, data, "s")
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"z", "1"}, rows[1])
	assert.Equal(t, []string{"a", "2"}, rows[2])
	assert.Equal(t, []string{"z", "1"}, rows[3])
}

func TestExport_TwiceSameContent(t *testing.T) {
	table := &domain.ParsedTable{
		Header: domain.TableRow{"类型", "问题"},
		Rows:   []domain.TableRow{{"案例补充", ""}, {"数据线索", "42"}},
	}

	first, err := Export(table, "x")
	require.NoError(t, err)
	second, err := Export(table, "x")
	require.NoError(t, err)

	assert.Equal(t, readRows(t, first, "x"), readRows(t, second, "x"))
}

func TestExport_InvalidTable(t *testing.T) {
	_, err := Export(nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTable)

	_, err = Export(&domain.ParsedTable{}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTable)
}

func TestExport_LongSheetNameWithApostrophe(t *testing.T) {
	table := &domain.ParsedTable{Header: domain.TableRow{"a"}, Rows: []domain.TableRow{{"1"}}}

	data, err := Export(table, strings.Repeat("a", 30)+"'s interview")
	require.NoError(t, err)

	rows := readRows(t, data, strings.Repeat("a", 30))
	assert.Equal(t, [][]string{{"a"}, {"1"}}, rows)
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty falls back", "", DefaultSheetName},
		{"forbidden chars", "Q3/访谈:[1]", "Q3_访谈__1_"},
		{"apostrophes trimmed", "'quoted'", "quoted"},
		{"truncated to 31", strings.Repeat("访", 40), strings.Repeat("访", 31)},
		{"kept as is", "分析结果", "分析结果"},
		{"apostrophe exposed by truncation", strings.Repeat("a", 30) + "'s interview", strings.Repeat("a", 30)},
		{"only apostrophes", "''", DefaultSheetName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSheetName(tt.input))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Q3 Interview Notes", "Q3_Interview_Notes"},
		{"chinese kept", "分析 结果", "分析_结果"},
		{"special chars", "a / b (c)", "a_b_c"},
		{"hyphens and underscores preserved", "my-file_2025", "my-file_2025"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, "分析结果_"+today+".xlsx", BuildFilename("分析结果", domain.ExportFormatXLSX))
	assert.Equal(t, "analysis_"+today+".csv", BuildFilename("///", domain.ExportFormatCSV))
}
