package mcp

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/store"
	"gopkg.in/yaml.v3"
)

// ChrootedStore is a project store restricted to a specific directory
type ChrootedStore struct {
	root *os.Root
}

// NewChrootedStore creates a new store restricted to the given directory
func NewChrootedStore(dir string) (*ChrootedStore, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open root directory: %w", err)
	}

	return &ChrootedStore{
		root: root,
	}, nil
}

// Close closes the root directory
func (s *ChrootedStore) Close() error {
	return s.root.Close()
}

// writeFile writes data to a file within the chrooted directory
func (s *ChrootedStore) writeFile(path string, data []byte) error {
	f, err := s.root.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// LoadProject loads a project from a file
func (s *ChrootedStore) LoadProject(path string) (*model.Project, error) {
	data, err := fs.ReadFile(s.root.FS(), filepath.ToSlash(path))
	if err != nil {
		return nil, err
	}
	return store.DecodeProject(data)
}

// SaveProject saves a project to a file. Invalid projects are not written.
func (s *ChrootedStore) SaveProject(path string, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	data, err := yaml.Marshal(project)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := s.root.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return s.writeFile(path, data)
}

// ListProjects lists all project files in a directory
func (s *ChrootedStore) ListProjects(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.root.FS(), filepath.ToSlash(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), store.ProjectFileSuffix) {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// DeleteProject deletes a project file
func (s *ChrootedStore) DeleteProject(path string) error {
	return s.root.Remove(path)
}
