package fileserver

import (
	"io"
	"io/fs"
	"net/http"
	"strings"
)

type dotFileHidingFS struct {
	http.FileSystem
}

func (fsys dotFileHidingFS) Open(name string) (http.File, error) {
	if hasDotFile(name) {
		return nil, fs.ErrNotExist
	}

	f, err := fsys.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	return dotFileHidingFile{f}, nil
}

// hasDotFile reports whether any element of name starts with a dot. "." itself is the root.
func hasDotFile(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if part != "." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

type dotFileHidingFile struct {
	http.File
}

// Readdir drops dotfiles from directory listings.
func (f dotFileHidingFile) Readdir(n int) ([]fs.FileInfo, error) {
	files, err := f.File.Readdir(n)

	visible := make([]fs.FileInfo, 0, len(files))
	for _, file := range files {
		if !strings.HasPrefix(file.Name(), ".") {
			visible = append(visible, file)
		}
	}

	if err == nil && n > 0 && len(visible) == 0 {
		err = io.EOF
	}
	return visible, err
}
