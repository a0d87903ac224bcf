package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrFileEmpty     = errors.New("file is empty")
	ErrFileTooLarge  = errors.New("file too large")
	ErrFileExtension = errors.New("invalid file extension")
	ErrFileType      = errors.New("invalid file type")
)

// FileRejectedError is returned when an upload fails one of the
// validator's checks. Err is one of the ErrFile* sentinels.
type FileRejectedError struct {
	Filename string
	Err      error
	Detail   string
}

func (e *FileRejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Filename, e.Err, e.Detail)
}

func (e *FileRejectedError) Unwrap() error { return e.Err }

// FileValidator accepts uploads by size, extension and sniffed content.
type FileValidator struct {
	extensions []string
	mimeTypes  []string
	maxBytes   int64
}

func NewFileValidator(extensions, mimeTypes []string, maxSizeMB int) *FileValidator {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &FileValidator{
		extensions: normalizeList(extensions),
		mimeTypes:  normalizeList(mimeTypes),
		maxBytes:   int64(maxSizeMB) << 20,
	}
}

// ValidateFile returns the detected MIME type of an accepted file. A
// *FileRejectedError means the file itself is unacceptable; any other error
// is an I/O failure.
func (v *FileValidator) ValidateFile(fh *multipart.FileHeader) (string, error) {
	reject := func(err error, detail string) (string, error) {
		return "", &FileRejectedError{Filename: fh.Filename, Err: err, Detail: detail}
	}

	switch {
	case fh.Size == 0:
		return reject(ErrFileEmpty, "")
	case fh.Size > v.maxBytes:
		return reject(ErrFileTooLarge, fmt.Sprintf("max %d MB", v.maxBytes>>20))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(v.extensions, ext) {
		return reject(ErrFileExtension, ext)
	}

	detected, err := v.sniff(fh)
	if err != nil {
		return "", err
	}
	if !v.mimeAllowed(detected) {
		return reject(ErrFileType, detected.String())
	}
	return detected.String(), nil
}

func (v *FileValidator) sniff(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return detected, nil
}

func (v *FileValidator) mimeAllowed(detected *mimetype.MIME) bool {
	for _, m := range v.mimeTypes {
		if detected.Is(m) {
			return true
		}
	}
	return false
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(strings.ToLower(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
