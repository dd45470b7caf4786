// Package archive packs a generated project directory into a ZIP file.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/droidgen/droidgen/internal/defs"
)

// ErrNotDirectory is returned when the source is not a directory.
var ErrNotDirectory = errors.New("archive: source is not a directory")

// modTime is stamped on every entry so identical trees yield identical bytes.
var modTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ZipDir writes a ZIP of dir to w. Entry names are slash-separated and
// relative to the parent of dir, so every entry starts with the base name of
// dir. Entries are written in lexical walk order.
func ZipDir(ctx context.Context, dir string, w io.Writer) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("archive: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	base := filepath.Base(filepath.Clean(dir))
	zw := zip.NewWriter(w)

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := path.Join(base, filepath.ToSlash(rel))

		if d.IsDir() {
			_, err := zw.CreateHeader(&zip.FileHeader{
				Name:     name + "/",
				Method:   zip.Store,
				Modified: modTime,
			})
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return addFile(zw, p, name, d)
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: close: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, src, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modTime,
	}
	mode := defs.FilePerm
	if info.Mode()&0o111 != 0 {
		mode = defs.ExecPerm
	}
	hdr.SetMode(mode)

	fw, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(fw, f)
	return err
}

// ZipToFile writes a ZIP of dir to dest. A partially written dest is removed
// on failure.
func ZipToFile(ctx context.Context, dir, dest string) (err error) {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", dest, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("archive: close %s: %w", dest, cerr)
		}
		if err != nil {
			os.Remove(dest)
		}
	}()

	return ZipDir(ctx, dir, f)
}
