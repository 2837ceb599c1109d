package ports

import "os"

// FileSystemPort is the subset of file system operations the snapshot store needs.
type FileSystemPort interface {
	CreateDir(dirPath string, permission os.FileMode, force bool) error
	ReadDir(pattern string) ([]string, error)

	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	ReadFile(filePath string) ([]byte, error)
	DeleteFile(filePath string) error

	Exists(filePath string) (bool, error)
}
