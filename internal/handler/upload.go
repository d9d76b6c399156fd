package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/service"
)

// readUpload loads the multipart file in field into memory, enforcing maxBytes.
func readUpload(c *gin.Context, field string, maxBytes int64) (*service.Upload, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, domain.ErrMissingFile)
	}
	defer func() { _ = file.Close() }()

	if maxBytes > 0 && header.Size > maxBytes {
		return nil, fmt.Errorf("%s: %w", field, domain.ErrFileTooLarge)
	}

	var r io.Reader = file
	if maxBytes > 0 {
		r = io.LimitReader(file, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%s: %w", field, domain.ErrFileTooLarge)
	}
	return &service.Upload{Filename: header.Filename, Data: data}, nil
}

// analysisInput collects the goal and both documents from a multipart form.
func analysisInput(c *gin.Context, maxBytes int64) (*service.AnalysisInput, error) {
	transcript, err := readUpload(c, "transcript", maxBytes)
	if err != nil {
		return nil, err
	}
	outline, err := readUpload(c, "outline", maxBytes)
	if err != nil {
		return nil, err
	}
	return &service.AnalysisInput{
		Target:     c.PostForm("target"),
		Transcript: transcript,
		Outline:    outline,
	}, nil
}

// sendAttachment writes artifact as a download. Non-ASCII names go in filename*.
func sendAttachment(c *gin.Context, artifact *domain.ExportArtifact) {
	fallback := strings.Map(func(r rune) rune {
		if r > 0x7e || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, artifact.Filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		fallback, url.PathEscape(artifact.Filename)))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
