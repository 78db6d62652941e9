package claim

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage persists the original documents attached to claims so they can
// be re-examined during manual review.
type Storage interface {
	// Save writes a document and returns the name it was stored under.
	Save(filename string, data []byte) (string, error)

	// Get reads back a previously stored document.
	Get(name string) ([]byte, error)

	// Delete removes a stored document.
	Delete(name string) error
}

// LocalStorage keeps claim documents as flat files in a single directory.
// Names are reduced to their base component, so upload names carrying path
// separators cannot escape the directory.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

func (l *LocalStorage) Save(filename string, data []byte) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid document name %q", filename)
	}
	if err := os.WriteFile(filepath.Join(l.basePath, name), data, 0644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}
	return name, nil
}

func (l *LocalStorage) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return data, nil
}

func (l *LocalStorage) Delete(name string) error {
	if err := os.Remove(filepath.Join(l.basePath, filepath.Base(name))); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
