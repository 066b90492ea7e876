package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists resume formats the parser can read.
var SupportedExtensions = []string{".pdf", ".docx"}

// Supported reports whether the file name carries a supported extension.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Parse extracts plain text from the resume at path. The path must exist and
// carry a supported extension; any decoding failure is returned as an error
// and never aborts the calling batch.
func Parse(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("resume file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return parsePDF(path)
	case ".docx":
		return parseDocx(path)
	default:
		return "", fmt.Errorf("unsupported file format %q, supported: %s",
			ext, strings.Join(SupportedExtensions, ", "))
	}
}

// ParseReader spools the reader into a temporary file and extracts text from
// it. The temporary copy is removed on both success and failure paths.
func ParseReader(r io.Reader, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	tmp, err := os.CreateTemp("", "resume_*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temporary resume copy: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temporary resume copy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return Parse(tmp.Name())
}
