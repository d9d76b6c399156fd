package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input *service.AnalysisInput) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func (m *MockAnalysisService) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}
