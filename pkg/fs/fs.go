package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Creates a directory if not present. Returns non nil error if directory is already present and force flag is false.
func (lfs *LocalFileSystem) CreateDir(dirPath string, permission os.FileMode, force bool) error {
	stat, err := os.Stat(dirPath)
	if err == nil {
		if !stat.IsDir() {
			return errors.New("existing path isn't a directory")
		}
		if !force {
			return fmt.Errorf("directory %s already exists", dirPath)
		}
		return nil
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("error in creating directory %s : %w", dirPath, err)
	}

	if err := os.MkdirAll(dirPath, permission); err != nil {
		return fmt.Errorf("error in creating all directories %s : %w", dirPath, err)
	}

	return nil
}

// Returns the file names matching a glob pattern.
func (lfs *LocalFileSystem) ReadDir(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// Writes contents to a temporary file and renames it over filePath,
// so readers never observe a partially written file.
func (lfs *LocalFileSystem) WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, contents, permission); err != nil {
		return err
	}

	if err := os.Rename(tmp, filePath); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}

// Reads the whole file.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// Deletes a file.
func (lfs *LocalFileSystem) DeleteFile(filePath string) error {
	return os.Remove(filePath)
}

// Reports whether filePath exists.
func (lfs *LocalFileSystem) Exists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
