package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/llm"
	"interviewdesk/internal/mdrender"
	"interviewdesk/internal/mdtable"
	"interviewdesk/internal/port"
)

// NoTableMessage is shown when the answer carries no table to export.
const NoTableMessage = "分析结果中未包含表格数据"

// Upload is one uploaded document.
type Upload struct {
	Filename string
	Data     []byte
}

// AnalysisInput is the DTO for one transcript-versus-outline analysis.
type AnalysisInput struct {
	Target     string
	Transcript *Upload
	Outline    *Upload
}

// AnalysisService defines the interview analysis contract.
type AnalysisService interface {
	Analyze(ctx context.Context, input *AnalysisInput) (*domain.AnalysisResult, error)
	Ready() bool
}

type analysisService struct {
	extractor port.TextExtractor
	completer port.Completer
	provider  string
}

// NewAnalysisService creates a new AnalysisService implementation. provider
// names the primary model provider in failure messages. A nil completer
// makes Analyze return domain.ErrCompleterNotReady.
func NewAnalysisService(extractor port.TextExtractor, completer port.Completer, provider string) AnalysisService {
	return &analysisService{
		extractor: extractor,
		completer: completer,
		provider:  provider,
	}
}

func (s *analysisService) Ready() bool {
	return s.completer != nil
}

func (s *analysisService) Analyze(ctx context.Context, input *AnalysisInput) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(input.Target) == "" {
		return nil, domain.ErrMissingTarget
	}
	if input.Transcript == nil || len(input.Transcript.Data) == 0 {
		return nil, fmt.Errorf("transcript: %w", domain.ErrMissingFile)
	}
	if input.Outline == nil || len(input.Outline.Data) == 0 {
		return nil, fmt.Errorf("outline: %w", domain.ErrMissingFile)
	}
	if s.completer == nil {
		return nil, domain.ErrCompleterNotReady
	}

	var transcript, outline string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.extractor.ExtractText(gctx, input.Transcript.Filename, input.Transcript.Data)
		if err != nil {
			return fmt.Errorf("transcript %q: %w", input.Transcript.Filename, err)
		}
		transcript = text
		return nil
	})
	g.Go(func() error {
		text, err := s.extractor.ExtractText(gctx, input.Outline.Filename, input.Outline.Data)
		if err != nil {
			return fmt.Errorf("outline %q: %w", input.Outline.Filename, err)
		}
		outline = text
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("service.AnalysisService: extraction failed: %v", err)
		return nil, err
	}

	log.Printf("service.AnalysisService: analyzing transcript (%d chars) against outline (%d chars)",
		len([]rune(transcript)), len([]rune(outline)))

	prompt := llm.BuildInterviewPrompt(input.Target, outline, transcript)
	start := time.Now()
	result := &domain.AnalysisResult{}

	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("service.AnalysisService: completion failed: %v", err)
		result.Markdown = remoteFailureText(s.provider, err)
		result.RemoteFailed = true
	} else {
		result.Markdown = out.Text
		result.Model = out.Model
	}
	result.Latency = time.Since(start)
	result.HTML = mdrender.ToHTML(result.Markdown)

	table, err := mdtable.Extract(result.Markdown)
	switch {
	case errors.Is(err, domain.ErrTableNotFound):
		result.Message = NoTableMessage
	case err != nil:
		return nil, fmt.Errorf("extracting table: %w", err)
	default:
		if table.NormalizedRows > 0 {
			log.Printf("service.AnalysisService: normalized %d malformed row(s) to width %d",
				table.NormalizedRows, table.Width())
		}
		result.Table = table
		result.TableFound = true
	}

	log.Printf("service.AnalysisService: done in %s (model=%q, table_found=%t, remote_failed=%t)",
		result.Latency.Round(time.Millisecond), result.Model, result.TableFound, result.RemoteFailed)
	return result, nil
}

// remoteFailureText renders a completion error as the answer shown to the
// user. It never contains a table, so no export is offered.
func remoteFailureText(provider string, err error) string {
	// Provider 429s wrap a StatusError, so rate limits are checked first.
	var rl *llm.RateLimitError
	if errors.As(err, &rl) {
		name := rl.Provider
		if name == "" || name == "all" {
			name = provider
		}
		return fmt.Sprintf("调用 %s 失败: 状态码 429: 请求过于频繁，请在 %s 后重试", name, rl.RetryAfter)
	}
	var se *llm.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("调用 %s 失败: 状态码 %d: %s", se.Provider, se.StatusCode, strings.TrimSpace(se.Body))
	}
	return fmt.Sprintf("调用 %s 失败: %v", provider, err)
}
