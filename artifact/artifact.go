// Package artifact writes generated files so that a failed run never leaves a
// partial file behind.
package artifact

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Mode is the permission of a committed artifact.
const Mode fs.FileMode = 0o644

// WriteFile calls render with a buffered writer on a temporary file in the
// directory of path. If render and the flush succeed, the temporary file is
// renamed over path. Otherwise it is removed, and any existing file at path is
// left as it was.
func WriteFile(path string, render func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	buf := bufio.NewWriter(tmp)
	if err = render(buf); err != nil {
		return
	}
	if err = buf.Flush(); err != nil {
		return
	}
	if err = tmp.Chmod(Mode); err != nil {
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return
	}

	committed = true

	return
}
