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

package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = "This is a test file for Huffman compression."

func runCmd(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stderr.String()
}

func writeSample(t *testing.T, dir string, data string) string {
	t.Helper()
	p := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(p, []byte(data), 0640))
	return p
}

func TestCompressDecompress(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, sample)

	code, errOut := runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)
	require.FileExists(t, in+".huff")

	out := filepath.Join(dir, "test_decompressed.txt")
	code, errOut = runCmd(t, "-d", in+".huff", out)
	require.Equal(t, 0, code, errOut)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, sample, string(got))
}

func TestEmptyFile(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "")

	code, errOut := runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)
	out := filepath.Join(dir, "empty_decompressed.txt")
	code, errOut = runCmd(t, "-d", in+".huff", out)
	require.Equal(t, 0, code, errOut)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestOutputNames(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, sample)

	code, errOut := runCmd(t, "-c", in, filepath.Join(dir, "packed"))
	require.Equal(t, 0, code, errOut)
	require.FileExists(t, filepath.Join(dir, "packed.huff"))

	// the original test.txt is still there, so decompression picks a new name
	code, errOut = runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)
	code, errOut = runCmd(t, "-d", in+".huff")
	require.Equal(t, 0, code, errOut)
	got, err := os.ReadFile(filepath.Join(dir, "test(1).txt"))
	require.NoError(t, err)
	require.Equal(t, sample, string(got))

	// compressing again does not clobber test.txt.huff
	code, errOut = runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)
	require.FileExists(t, filepath.Join(dir, "test.txt(1).huff"))

	code, errOut = runCmd(t, "-f", "-d", in+".huff", in)
	require.Equal(t, 0, code, errOut)
	require.NoFileExists(t, filepath.Join(dir, "test(2).txt"))
}

func TestMetadataIsCopied(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, sample)
	require.NoError(t, os.Chmod(in, 0604))

	code, errOut := runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)
	fi, err := os.Stat(in + ".huff")
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0604), fi.Mode().Perm())
}

func TestVerboseReportsRatio(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, sample+sample+sample)

	code, errOut := runCmd(t, "-v", "-c", in)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, errOut, "compression ratio")
	require.Contains(t, errOut, "[DEBUG]")
}

func TestUsageErrors(t *testing.T) {
	code, _ := runCmd(t)
	require.Equal(t, 2, code)

	code, _ = runCmd(t, "-c", "a", "-d", "b.huff")
	require.Equal(t, 2, code)

	code, _ = runCmd(t, "-c", "a", "b", "c")
	require.Equal(t, 2, code)

	code, errOut := runCmd(t, "-d", "plain.txt")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, ".huff")

	code, _ = runCmd(t, "-c", filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, 1, code)
}

func TestCorruptArchiveWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, sample)
	code, errOut := runCmd(t, "-c", in)
	require.Equal(t, 0, code, errOut)

	packed, err := os.ReadFile(in + ".huff")
	require.NoError(t, err)
	packed[40] ^= 0xff
	require.NoError(t, os.WriteFile(in+".huff", packed, 0644))

	out := filepath.Join(dir, "restored.txt")
	code, errOut = runCmd(t, "-d", in+".huff", out)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "[ERROR]")
	require.NoFileExists(t, out)
}
