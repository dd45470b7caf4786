package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/droidgen/droidgen/internal/defs"
)

// copyFonts copies every *.ttf file of family from fontDir/family into
// destDir, byte for byte, in name order. It returns the names copied before
// the first failure.
func copyFonts(fontDir, family, destDir string) ([]string, error) {
	src := filepath.Join(fontDir, family)
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("read font family %q: %w", family, err)
	}

	if err := os.MkdirAll(destDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	var copied []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ".ttf") {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(destDir, e.Name())); err != nil {
			return copied, err
		}
		copied = append(copied, e.Name())
	}
	if len(copied) == 0 {
		return nil, fmt.Errorf("no .ttf files in %s", src)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
