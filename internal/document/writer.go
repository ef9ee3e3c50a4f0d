package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write renders the document to <videoID>.md under dir, creating the
// directory if needed. Returns the written path.
func Write(doc *Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, doc.Ref.ID+".md")
	if err := os.WriteFile(path, []byte(doc.Markdown()), 0644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return path, nil
}

// WriteDocx renders the document to <videoID>.docx under dir.
func WriteDocx(doc *Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, doc.Ref.ID+".docx")
	if err := markdownToDocx(doc.Title, doc.Markdown(), path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}

	return path, nil
}
