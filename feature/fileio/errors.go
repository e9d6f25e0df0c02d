package fileio

import "fmt"

// FileError is a read, parse or write failure on a dispute or result file.
type FileError struct {
	Op     string
	Path   string
	Format Format
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s file %s: %v", e.Op, e.Format, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
