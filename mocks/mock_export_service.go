package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportXLSX(ctx context.Context, input *service.ExportInput) (*domain.ExportArtifact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportArtifact), args.Error(1)
}

func (m *MockExportService) ExportCSV(ctx context.Context, input *service.ExportInput) (*domain.ExportArtifact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportArtifact), args.Error(1)
}

func (m *MockExportService) TableFromMarkdown(raw string) (*domain.ParsedTable, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedTable), args.Error(1)
}
