package primitives

import (
	"path/filepath"
	"strings"
)

// Filepath addresses a saved table. Its files are sister paths of the base.
//
//	base := primitives.Filepath("data/people")
//	base.Sister(".schema") // "data/people.schema"
type Filepath string

// Dir returns the directory holding the path.
func (f Filepath) Dir() string {
	return filepath.Dir(string(f))
}

func (f Filepath) String() string {
	return string(f)
}

// Sister returns the path with ext appended; an existing extension is kept,
// so "a.v1" becomes "a.v1.csv". A leading dot is added to ext when missing.
func (f Filepath) Sister(ext string) Filepath {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Filepath(string(f) + ext)
}
