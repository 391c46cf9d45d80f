package convert

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// isCourseFile recognizes course documents by extension. Content is validated
// by the parser, extension sniffing only routes the file.
func isCourseFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// isBundleFile checks file magic for a zip bundle.
func isBundleFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	if n == 0 {
		// filetype rejects empty buffers, an empty file is simply not a bundle
		return false, nil
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return kind == matchers.TypeZip, nil
}
