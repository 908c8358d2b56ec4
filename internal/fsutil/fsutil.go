// Package fsutil wraps the file system operations the installer performs on
// project directories. Paths handed back by this package always use forward
// slashes so they can be interpolated into shell commands unchanged.
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const DirectoryPermissions = 0755

// NormalizePath converts any Windows style separators to forward slashes.
func NormalizePath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// SamePath reports whether a and b name the same location once normalized.
func SamePath(a, b string) bool {
	return path.Clean(NormalizePath(a)) == path.Clean(NormalizePath(b))
}

func PathExists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}

func IsDirectory(p string) bool {
	info, err := os.Lstat(p)
	return err == nil && info.IsDir()
}

func IsFile(p string) bool {
	info, err := os.Lstat(p)
	return err == nil && info.Mode().IsRegular()
}

// Filename returns the last element of p, extension included.
func Filename(p string) string {
	return path.Base(NormalizePath(p))
}

// Extension returns the extension of p without the leading dot.
func Extension(p string) string {
	return strings.TrimPrefix(path.Ext(Filename(p)), ".")
}

func CreateDirectory(dir string) error {
	if IsDirectory(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, DirectoryPermissions); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// ListDirectoryContents returns the names of the immediate children of dir, sorted.
func ListDirectoryContents(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func IsEmpty(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

// Delete removes a file or a directory tree. A missing path is not an error.
func Delete(p string) error {
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("delete %s: %w", p, err)
	}
	return nil
}

// Copy copies the file src to the file dst, or the contents of the directory
// src into the directory dst, merging with whatever dst already holds.
func Copy(src, dst string) error {
	if SamePath(src, dst) {
		return nil
	}
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if err := os.MkdirAll(filepath.Dir(dst), DirectoryPermissions); err != nil {
			return err
		}
		return copyEntry(src, dst, info)
	}

	return filepath.WalkDir(src, func(current string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, current)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, DirectoryPermissions)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyEntry(current, target, info)
	})
}

func copyEntry(src, dst string, info fs.FileInfo) error {
	if info.Mode()&os.ModeSymlink != 0 {
		link, err := os.Readlink(src)
		if err != nil {
			return err
		}
		_ = os.Remove(dst)
		return os.Symlink(link, dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func ReadFromFile(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func AppendToFile(p string, content string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadLines yields the lines of the file at p. The file is opened when
// iteration starts and closed when it stops; every call reads it afresh.
func ReadLines(p string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(p)
		if err != nil {
			yield("", err)
			return
		}
		defer f.Close()
		for line, err := range Lines(f) {
			if !yield(line, err) {
				return
			}
		}
	}
}

// Lines yields the lines read from r without their line terminators.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(strings.TrimSuffix(scanner.Text(), "\r"), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}
