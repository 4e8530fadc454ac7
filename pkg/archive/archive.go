// Package archive produces the flat file listing installers work on, either
// by walking an unpacked archive or by reading a list of paths.
package archive

import (
	"bufio"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/spf13/afero"
)

// List walks root and returns every directory and file below it, relative
// to root and in walk order. Directories are listed without a trailing
// separator, the way archive extractors report them.
func List(fsys afero.Fs, root string) ([]string, error) {
	logger := logging.GetLogger("archive")

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open archive directory %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root)
	}

	var files []string
	err = afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to walk %s", root)
	}

	logger.Debug().Str("root", root).Int("entries", len(files)).Msg("Listed archive")
	return files, nil
}

// ReadList reads one path per line. Blank lines are skipped and trailing
// carriage returns removed; paths are otherwise kept verbatim.
func ReadList(r io.Reader) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read file list")
	}
	return files, nil
}
