package resume

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const documentEntry = "word/document.xml"

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// parseDocx extracts text from a docx archive paragraph by paragraph.
func parseDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx %q: %w", path, err)
	}
	defer archive.Close()

	document, err := readDocument(archive)
	if err != nil {
		return "", fmt.Errorf("decoding docx %q: %w", path, err)
	}

	return strings.TrimSpace(strings.Join(paragraphs(document), "\n")), nil
}

func readDocument(archive *zip.ReadCloser) (string, error) {
	for _, entry := range archive.File {
		if entry.Name != documentEntry {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return "", errors.New("no document.xml found in archive")
}

// paragraphs converts raw document markup into one line per paragraph.
func paragraphs(document string) []string {
	document = strings.ReplaceAll(document, "</w:p>", "\n")
	document = strings.ReplaceAll(document, "<w:tab/>", "\t")
	document = tagPattern.ReplaceAllString(document, "")
	document = strings.ReplaceAll(document, "&amp;", "&")
	document = strings.ReplaceAll(document, "&lt;", "<")
	document = strings.ReplaceAll(document, "&gt;", ">")

	lines := strings.Split(document, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " \t"))
	}
	return result
}
