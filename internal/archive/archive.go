// Package archive unpacks the repository archives GitHub serves for zipball
// and tarball requests.
package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"

	"github.com/simplicity-js/installer/internal/fsutil"
)

var (
	ErrUnknownFormat = errors.New("unrecognized archive format")
	ErrUnsafePath    = errors.New("archive entry escapes the destination directory")
)

var (
	zipMagic  = []byte("PK\x03\x04")
	gzipMagic = []byte{0x1f, 0x8b}
)

// Extract unpacks src into dest. The format is taken from the first bytes of
// src, not from its name.
func Extract(src string, dest string) error {
	header, err := readHeader(src, 4)
	if err != nil {
		return err
	}
	switch {
	case bytes.HasPrefix(header, zipMagic):
		return Unzip(src, dest)
	case bytes.HasPrefix(header, gzipMagic):
		return Untar(src, dest)
	default:
		return fmt.Errorf("%s: %w", fsutil.Filename(src), ErrUnknownFormat)
	}
}

func readHeader(src string, n int) ([]byte, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, n)
	read, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return header[:read], nil
}

func Unzip(src string, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", fsutil.Filename(src), err)
	}
	defer r.Close()

	if err := fsutil.CreateDirectory(dest); err != nil {
		return err
	}
	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		switch {
		case f.Mode()&os.ModeSymlink != 0:
			if err := unzipSymlink(f, dest, target); err != nil {
				return err
			}
			continue
		case f.FileInfo().IsDir():
			if err := fsutil.CreateDirectory(target); err != nil {
				return err
			}
			continue
		}
		if err := unzipFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func unzipFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return writeFile(target, rc, f.Mode().Perm())
}

// unzipSymlink recreates a link stored the unix way: the entry's content is the link target.
func unzipSymlink(f *zip.File, dest string, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	linkname, err := io.ReadAll(io.LimitReader(rc, 4096))
	if err != nil {
		return err
	}
	return writeSymlink(dest, target, string(linkname))
}

// Untar unpacks a gzip compressed tar archive.
func Untar(src string, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("open %s: %w", fsutil.Filename(src), err)
	}
	defer gz.Close()

	if err := fsutil.CreateDirectory(dest); err != nil {
		return err
	}
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", fsutil.Filename(src), err)
		}

		switch header.Typeflag {
		case tar.TypeXGlobalHeader:
			// GitHub stores the commit id here.
			continue
		case tar.TypeDir:
			target, err := safeJoin(dest, header.Name)
			if err != nil {
				return err
			}
			if err := fsutil.CreateDirectory(target); err != nil {
				return err
			}
		case tar.TypeReg:
			target, err := safeJoin(dest, header.Name)
			if err != nil {
				return err
			}
			if err := writeFile(target, tr, os.FileMode(header.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			target, err := safeJoin(dest, header.Name)
			if err != nil {
				return err
			}
			if err := writeSymlink(dest, target, header.Linkname); err != nil {
				return err
			}
		}
	}
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	if err := fsutil.CreateDirectory(filepath.Dir(target)); err != nil {
		return err
	}
	if perm == 0 {
		perm = 0644
	}
	if isSymlink(target) {
		if err := os.Remove(target); err != nil {
			return err
		}
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writeSymlink creates target pointing at linkname. Links must be relative and
// resolve inside dest.
func writeSymlink(dest string, target string, linkname string) error {
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkname))
	if linkname == "" || filepath.IsAbs(linkname) || strings.HasPrefix(linkname, "/") || !within(dest, resolved) {
		return fmt.Errorf("%s -> %s: %w", filepath.Base(target), linkname, ErrUnsafePath)
	}
	if err := fsutil.CreateDirectory(filepath.Dir(target)); err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Symlink(linkname, target)
}

// safeJoin returns the path of the entry name below dest. Names that climb
// out of dest or pass through an extracted symlink are rejected.
func safeJoin(dest string, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !within(dest, target) {
		return "", fmt.Errorf("%s: %w", name, ErrUnsafePath)
	}
	for dir := filepath.Dir(target); within(dest, dir) && dir != filepath.Clean(dest); dir = filepath.Dir(dir) {
		if isSymlink(dir) {
			return "", fmt.Errorf("%s: %w", name, ErrUnsafePath)
		}
	}
	return target, nil
}

func within(dest string, p string) bool {
	rel, err := filepath.Rel(dest, p)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isSymlink(p string) bool {
	info, err := os.Lstat(p)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}
