/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Whole-file helpers for the huffarc command.
package fileio

import "errors"
import "fmt"
import "io/fs"
import "os"
import "path/filepath"
import "strings"

// ReadAll returns the contents of the file at path.
func ReadAll(path string) ([]byte, error) {
	b, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("reading %s: %w", path, e)
	}
	return b, nil
}

// WriteAtomic writes data to a temporary file next to path and renames it into place.
// Either the whole file appears at path or nothing does.
func WriteAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, e := os.CreateTemp(dir, "."+base+".tmp*")
	if e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	if _, e = f.Write(data); e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	if e = f.Sync(); e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	if e = f.Chmod(perm); e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	if e = f.Close(); e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	if e = os.Rename(tmp, path); e != nil {
		return fmt.Errorf("writing %s: %w", path, e)
	}
	return nil
}

// CopyMetadata gives dst the permission bits and modification time of src.
func CopyMetadata(src, dst string) error {
	fi, e := os.Stat(src)
	if e != nil {
		return e
	}
	if e = os.Chmod(dst, fi.Mode().Perm()); e != nil {
		return e
	}
	return os.Chtimes(dst, fi.ModTime(), fi.ModTime())
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, e := os.Lstat(path)
	return !errors.Is(e, fs.ErrNotExist)
}

// UniqueName returns path if nothing exists there, otherwise the first free
// name of the form "name(1).ext", "name(2).ext", ...
func UniqueName(path string) string {
	if !Exists(path) {
		return path
	}
	ext := filepath.Ext(path)
	root := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		p := fmt.Sprintf("%s(%d)%s", root, i, ext)
		if !Exists(p) {
			return p
		}
	}
}
