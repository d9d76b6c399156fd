// Package docextract turns uploaded transcript and outline files into plain text.
package docextract

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"interviewdesk/internal/domain"
)

// UnsupportedTypeText is the user-visible message for a file whose type cannot be read.
const UnsupportedTypeText = "不支持的文件类型"

// Extractor implements port.TextExtractor for PDF, DOCX and plain text.
type Extractor struct {
	maxBytes int64
}

// NewExtractor creates an Extractor that rejects inputs above maxBytes.
// A non-positive maxBytes disables the limit.
func NewExtractor(maxBytes int64) *Extractor {
	return &Extractor{maxBytes: maxBytes}
}

// FileTypeOf returns the FileType for filename's extension.
func FileTypeOf(filename string) (domain.FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	ft, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}
	return ft, nil
}

// ExtractText returns the NFC-normalized text of data, dispatching on the
// extension of filename and checking the content matches it.
func (e *Extractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	ft, err := FileTypeOf(filename)
	if err != nil {
		return "", err
	}
	if e.maxBytes > 0 && int64(len(data)) > e.maxBytes {
		return "", domain.ErrFileTooLarge
	}
	if err := checkContent(ft, data); err != nil {
		return "", err
	}

	var text string
	switch ft {
	case domain.FileTypePDF:
		text, err = extractPDF(ctx, data)
	case domain.FileTypeDOCX:
		text, err = extractDOCX(data, e.maxBytes)
	case domain.FileTypeTXT:
		text, err = extractTXT(data)
	}
	if err != nil {
		log.Printf("docextract.Extractor: %s (%s, %d bytes) failed: %v", filename, ft, len(data), err)
		return "", fmt.Errorf("extracting %s text: %w", ft, err)
	}

	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return "", domain.ErrEmptyDocument
	}
	return text, nil
}

// checkContent compares magic bytes with the declared type.
func checkContent(ft domain.FileType, data []byte) error {
	n := len(data)
	if n > 512 {
		n = 512
	}
	detected := http.DetectContentType(data[:n])

	switch ft {
	case domain.FileTypePDF:
		if detected != "application/pdf" {
			return domain.ErrUnsupportedFileType
		}
	case domain.FileTypeDOCX:
		if detected != "application/zip" {
			return domain.ErrUnsupportedFileType
		}
	case domain.FileTypeTXT:
		// Legacy encodings such as GB18030 sniff as octet-stream; only reject
		// content that is clearly another binary format.
		if detected == "application/pdf" || detected == "application/zip" || strings.HasPrefix(detected, "image/") {
			return domain.ErrUnsupportedFileType
		}
	}
	return nil
}
