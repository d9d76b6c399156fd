package domain

import "time"

// TableRow is an ordered sequence of string cells.
type TableRow []string

// ParsedTable is a header row plus zero or more data rows, all of the same width.
type ParsedTable struct {
	Header TableRow   `json:"header"`
	Rows   []TableRow `json:"rows"`

	// NormalizedRows counts data rows that were padded or truncated to the header width.
	NormalizedRows int `json:"normalized_rows"`
}

// Width returns the header cell count.
func (t *ParsedTable) Width() int {
	return len(t.Header)
}

// Records returns the header followed by the data rows as plain string slices.
func (t *ParsedTable) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, []string(t.Header))
	for _, r := range t.Rows {
		out = append(out, []string(r))
	}
	return out
}

// Validate checks the rectangular invariant of a table supplied by a client.
// Rows are normalized to the header width rather than rejected.
func (t *ParsedTable) Validate() error {
	if t == nil || len(t.Header) == 0 {
		return ErrInvalidTable
	}
	w := len(t.Header)
	for i, r := range t.Rows {
		if len(r) == w {
			continue
		}
		fixed := make(TableRow, w)
		copy(fixed, r)
		t.Rows[i] = fixed
		t.NormalizedRows++
	}
	return nil
}

// AnalysisResult is the outcome of one transcript-versus-outline analysis.
type AnalysisResult struct {
	Markdown     string        `json:"markdown"`
	HTML         string        `json:"html"`
	Table        *ParsedTable  `json:"table,omitempty"`
	TableFound   bool          `json:"table_found"`
	Message      string        `json:"message,omitempty"`
	Model        string        `json:"model,omitempty"`
	RemoteFailed bool          `json:"remote_failed"`
	Latency      time.Duration `json:"latency_ns"`
}

// ExportArtifact is an encoded table ready to be sent as a download.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}
