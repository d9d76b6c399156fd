package docextract

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractTXT decodes UTF-8 (BOM optional) or BOM-marked UTF-16. Input that
// is not valid UTF-8 is read as GB18030, the usual legacy encoding of
// Chinese transcripts.
func extractTXT(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	if utf8.Valid(data) || hasUTF16BOM(data) {
		return string(decoded), nil
	}

	gb, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding GB18030 text: %w", err)
	}
	return string(gb), nil
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 && ((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE))
}
