package service

import (
	"context"
	"log"

	"interviewdesk/internal/config"
	"interviewdesk/internal/csvexport"
	"interviewdesk/internal/domain"
	"interviewdesk/internal/mdtable"
	"interviewdesk/internal/xlsxexport"
)

// ExportInput is the DTO for a download request. Table takes precedence
// over Markdown when both are set.
type ExportInput struct {
	Markdown string
	Table    *domain.ParsedTable
	Filename string
	Sheet    string
}

// ExportService defines the table export contract.
type ExportService interface {
	ExportXLSX(ctx context.Context, input *ExportInput) (*domain.ExportArtifact, error)
	ExportCSV(ctx context.Context, input *ExportInput) (*domain.ExportArtifact, error)
	TableFromMarkdown(raw string) (*domain.ParsedTable, error)
}

type exportService struct {
	cfg *config.ExportConfig
}

// NewExportService creates a new ExportService implementation.
func NewExportService(cfg *config.ExportConfig) ExportService {
	return &exportService{cfg: cfg}
}

func (s *exportService) TableFromMarkdown(raw string) (*domain.ParsedTable, error) {
	table, err := mdtable.Extract(raw)
	if err != nil {
		return nil, err
	}
	if table.NormalizedRows > 0 {
		log.Printf("service.ExportService: normalized %d malformed row(s)", table.NormalizedRows)
	}
	return table, nil
}

func (s *exportService) ExportXLSX(_ context.Context, input *ExportInput) (*domain.ExportArtifact, error) {
	table, err := s.resolveTable(input)
	if err != nil {
		return nil, err
	}

	sheet := input.Sheet
	if sheet == "" {
		sheet = s.cfg.SheetName
	}
	data, err := xlsxexport.Export(table, sheet)
	if err != nil {
		log.Printf("service.ExportService: xlsx export failed: %v", err)
		return nil, err
	}

	log.Printf("service.ExportService: exported %d row(s) to xlsx (%d bytes)", len(table.Rows), len(data))
	return &domain.ExportArtifact{
		Filename:    xlsxexport.BuildFilename(s.filename(input), domain.ExportFormatXLSX),
		ContentType: domain.ContentTypes[domain.ExportFormatXLSX],
		Data:        data,
	}, nil
}

func (s *exportService) ExportCSV(_ context.Context, input *ExportInput) (*domain.ExportArtifact, error) {
	table, err := s.resolveTable(input)
	if err != nil {
		return nil, err
	}

	data, err := csvexport.Export(table, s.cfg.CSVBOM)
	if err != nil {
		log.Printf("service.ExportService: csv export failed: %v", err)
		return nil, err
	}

	log.Printf("service.ExportService: exported %d row(s) to csv (%d bytes)", len(table.Rows), len(data))
	return &domain.ExportArtifact{
		Filename:    xlsxexport.BuildFilename(s.filename(input), domain.ExportFormatCSV),
		ContentType: domain.ContentTypes[domain.ExportFormatCSV],
		Data:        data,
	}, nil
}

func (s *exportService) resolveTable(input *ExportInput) (*domain.ParsedTable, error) {
	if input.Table != nil {
		if err := input.Table.Validate(); err != nil {
			return nil, err
		}
		return input.Table, nil
	}
	return s.TableFromMarkdown(input.Markdown)
}

func (s *exportService) filename(input *ExportInput) string {
	if input.Filename != "" {
		return input.Filename
	}
	return s.cfg.Filename
}
