package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"superclaims/internal/domain"
)

// ValidateClaimFiles checks the uploaded batch before any processing begins.
// Each failure wraps a domain sentinel error and names the offending file.
func ValidateClaimFiles(files []*multipart.FileHeader, maxFileSizeMB int64) error {
	if len(files) == 0 {
		return domain.ErrNoFilesUploaded
	}

	maxBytes := maxFileSizeMB * 1024 * 1024
	for _, fh := range files {
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			return fmt.Errorf("%q: %w", fh.Filename, domain.ErrUnsupportedFileType)
		}
		if fh.Size == 0 {
			return fmt.Errorf("%q: %w", fh.Filename, domain.ErrEmptyFile)
		}
		if fh.Size > maxBytes {
			return fmt.Errorf("%q is %.2fMB: %w", fh.Filename,
				float64(fh.Size)/(1024*1024), domain.ErrFileTooLarge)
		}
	}
	return nil
}

// StageClaimFiles writes the uploads into dir, which is request-scoped
// scratch space the caller removes when the request ends.
func StageClaimFiles(files []*multipart.FileHeader, dir string) ([]domain.FileEntry, error) {
	entries := make([]domain.FileEntry, 0, len(files))
	for _, fh := range files {
		path := filepath.Join(dir, filepath.Base(fh.Filename))
		if err := saveUpload(fh, path); err != nil {
			return nil, fmt.Errorf("staging %s: %w", fh.Filename, err)
		}
		log.Printf("fileStaging: saved %s (%d bytes)", fh.Filename, fh.Size)
		entries = append(entries, domain.FileEntry{Path: path, Filename: fh.Filename})
	}
	return entries, nil
}

func saveUpload(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}
