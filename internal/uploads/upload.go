// Package uploads validates evidence files, keeps them in blob storage, and
// records their metadata on the company's open assessment.
package uploads

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/pkg/formatting"
)

// DefaultMaxSize is the upload cap when none is configured.
const DefaultMaxSize int64 = 10 << 20

var allowed = map[string][]string{
	".jpeg": {"image/jpeg"},
	".jpg":  {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".txt":  {"text/plain"},
}

// Blob is stored evidence opened for reading. The caller closes Body.
type Blob struct {
	assessments.Upload
	Body io.ReadCloser
}

// Validate checks a file against the size cap and the allowlist. Both the
// extension and the media type must be allowed and must agree.
func Validate(filename, contentType string, size, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf(
			"%w: %s is larger than %s",
			ErrFileTooLarge,
			formatting.FormatBytes(size, 1),
			formatting.FormatBytes(maxSize, 0),
		)
	}
	if size == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidFile, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	types, ok := allowed[ext]
	if !ok {
		return fmt.Errorf("%w: only images, PDFs, and documents are allowed", ErrInvalidFile)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !slices.Contains(types, mediaType) {
		return fmt.Errorf("%w: %s content does not match %s", ErrInvalidFile, contentType, ext)
	}

	return nil
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}

func buildStorageKey(companyID string, id uuid.UUID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s/%s", companyID, id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" || name == "/" {
		name = "evidence"
	}
	return url.PathEscape(name)
}
