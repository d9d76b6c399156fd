package domain

import "errors"

var (
	ErrTableNotFound       = errors.New("no markdown table found in text")
	ErrInvalidTable        = errors.New("table has no header cells")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument       = errors.New("document contains no extractable text")
	ErrMissingFile         = errors.New("required file is missing")
	ErrMissingTarget       = errors.New("interview target is required")
	ErrCompleterNotReady   = errors.New("no language model provider configured")
)
