package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTemplateNotFound is returned when no binary template exists for a
// category key.
var ErrTemplateNotFound = errors.New("quotation template not found")

// TemplateStore fetches the binary document template for a category key.
type TemplateStore interface {
	Get(key string) ([]byte, error)
}

// DirTemplateStore serves templates from a directory on disk, one file per
// category named "<key>-template.docx".
type DirTemplateStore struct {
	Dir string
}

// Get reads the template for the given category key.
func (s DirTemplateStore) Get(key string) ([]byte, error) {
	path := filepath.Join(s.Dir, key+"-template.docx")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", key, err)
	}
	return data, nil
}
