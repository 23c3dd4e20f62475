package domain

import "errors"

var (
	ErrNoFilesUploaded     = errors.New("at least one PDF file is required")
	ErrUnsupportedFileType = errors.New("not a PDF file")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrServiceUnavailable  = errors.New("claim processing is not available")
)
