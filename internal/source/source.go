// Package source loads the target file into memory.
// The file handle is opened and released within a single Read call.
package source

import (
	"io"
	"os"

	"viewseg/internal/errors"
)

// File is the raw content of a loaded file together with the metadata
// reported in diagnostics.
type File struct {
	Path    string
	Size    int64
	ModTime int64
	Content []byte
}

// Read loads the whole file at path. A missing path, a directory, or an
// unreadable file is returned as a typed file error.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}
	if info.IsDir() {
		return nil, errors.NewFileNotReadableError(path, "is a directory", nil)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.NewFileNotReadableError(path, "read failed", err)
	}

	return &File{
		Path:    path,
		Size:    int64(len(content)),
		ModTime: info.ModTime().Unix(),
		Content: content,
	}, nil
}
