package port

import "context"

// TextExtractor turns an uploaded document into plain text.
// Unknown file types yield domain.ErrUnsupportedFileType.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}
