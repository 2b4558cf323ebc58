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

import "fmt"
import "io"
import "strings"
import "time"
import "github.com/maxymania/huffarc/archive"
import "github.com/maxymania/huffarc/huffmantable"
import "github.com/maxymania/huffarc/internal/fileio"
import "github.com/maxymania/huffarc/internal/logger"

func compressFile(o *options, stdout io.Writer, log logger.Logger) error {
	out := o.output
	if out == "" {
		out = o.compress + suffix
	} else if !strings.HasSuffix(out, suffix) {
		out += suffix
	}
	if !o.force {
		out = fileio.UniqueName(out)
	}

	data, e := fileio.ReadAll(o.compress)
	if e != nil {
		return e
	}
	start := time.Now()
	if o.tree {
		printTree(data, stdout)
	}
	c, e := archive.Compress(data)
	if e != nil {
		return fmt.Errorf("compressing %s: %w", o.compress, e)
	}
	packed, e := c.MarshalBinary()
	if e != nil {
		return fmt.Errorf("compressing %s: %w", o.compress, e)
	}
	if e = fileio.WriteAtomic(out, packed, 0644); e != nil {
		return e
	}
	if e = fileio.CopyMetadata(o.compress, out); e != nil {
		log.Errorf("copying metadata to %s: %v", out, e)
	}

	log.Debugf("%d distinct bytes, %d payload bits, %d bytes in %v",
		c.Codes.Len(), c.BitLength, len(packed), time.Since(start))
	if o.verbose && len(data) > 0 {
		log.Infof("compression ratio %.2f%% (%d -> %d bytes)",
			100*(1-float64(len(packed))/float64(len(data))), len(data), len(packed))
	}
	log.Infof("compressed %q into %q", o.compress, out)
	return nil
}

func decompressFile(o *options, log logger.Logger) error {
	if !strings.HasSuffix(o.decompress, suffix) {
		return fmt.Errorf("file to decompress must be named something%s", suffix)
	}
	out := o.output
	if out == "" {
		out = strings.TrimSuffix(o.decompress, suffix)
	}
	if !o.force {
		out = fileio.UniqueName(out)
	}

	packed, e := fileio.ReadAll(o.decompress)
	if e != nil {
		return e
	}
	start := time.Now()
	data, e := archive.DecompressBytes(packed)
	if e != nil {
		return fmt.Errorf("decompressing %s: %w", o.decompress, e)
	}
	if e = fileio.WriteAtomic(out, data, 0644); e != nil {
		return e
	}
	if e = fileio.CopyMetadata(o.decompress, out); e != nil {
		log.Errorf("copying metadata to %s: %v", out, e)
	}
	log.Debugf("%d -> %d bytes in %v", len(packed), len(data), time.Since(start))
	log.Infof("decompressed %q into %q", o.decompress, out)
	return nil
}

// printTree dumps the Huffman tree of data. huffman.Print writes to standard output,
// so the code table goes to stdout as well.
func printTree(data []byte, stdout io.Writer) {
	h := huffmantable.Scan(data)
	t, e := huffmantable.Build(&h)
	if e != nil {
		fmt.Fprintln(stdout, "empty input, no tree")
		return
	}
	t.Print()
	if codes, e := t.Codes(); e == nil {
		fmt.Fprintln(stdout, codes)
	}
}
