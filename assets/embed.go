// Package assets carries the default word lists compiled into the binary.
package assets

import (
	"bufio"
	"embed"
	"errors"
	"io/fs"
)

//go:embed words/*.txt
var files embed.FS

// Words is the embedded list directory: one <tier>_<category>.txt per list.
var Words fs.FS = mustSub(files, "words")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// ReadLines returns the raw lines of name in fsys, skipping blank lines and
// '#' comments. Cleaning is left to the caller. A missing file yields
// fs.ErrNotExist.
func ReadLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := sc.Text()
		if isBlankOrComment(s) {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// IsNotExist reports whether err means the list file is absent.
func IsNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

func isBlankOrComment(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}
