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

package huffmanblock

import "bytes"
import "errors"
import "io"
import "github.com/icza/bitio"

var ErrShortBuffer = errors.New("huffmanblock: fewer bytes than the bit length requires")

// ByteLen returns the number of bytes n bits occupy once packed.
func ByteLen(n uint64) uint64 { return (n + 7) / 8 }

// BitWriter packs bits most significant first and counts them.
// Close pads the last byte with zero bits.
type BitWriter struct {
	w *bitio.Writer
	n uint64
}

func NewBitWriter(out io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(out)}
}

// WriteBits writes the n low bits of r, highest first.
func (w *BitWriter) WriteBits(r uint64, n uint8) error {
	if e := w.w.WriteBits(r, n); e != nil {
		return e
	}
	w.n += uint64(n)
	return nil
}

func (w *BitWriter) WriteBool(b bool) error {
	if e := w.w.WriteBool(b); e != nil {
		return e
	}
	w.n++
	return nil
}

// Count returns the number of bits written so far, padding excluded.
func (w *BitWriter) Count() uint64 { return w.n }

func (w *BitWriter) Close() error { return w.w.Close() }

// BitReader yields exactly n bits from a packed buffer and then io.EOF.
// Padding beyond n is never read.
type BitReader struct {
	r    *bitio.Reader
	left uint64
}

// NewBitReader returns a reader over the first n bits of src.
func NewBitReader(src []byte, n uint64) (*BitReader, error) {
	if ByteLen(n) > uint64(len(src)) {
		return nil, ErrShortBuffer
	}
	return &BitReader{r: bitio.NewReader(bytes.NewReader(src)), left: n}, nil
}

func (r *BitReader) ReadBool() (bool, error) {
	if r.left == 0 {
		return false, io.EOF
	}
	b, e := r.r.ReadBool()
	if e != nil {
		return false, e
	}
	r.left--
	return b, nil
}

// Remaining returns the number of bits not yet read.
func (r *BitReader) Remaining() uint64 { return r.left }

// Pack converts a bit sequence into ByteLen(len(bits)) bytes.
func Pack(bits []bool) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(int(ByteLen(uint64(len(bits)))))
	w := NewBitWriter(buf)
	for _, b := range bits {
		w.WriteBool(b)
	}
	w.Close()
	return buf.Bytes()
}

// Unpack returns the first n bits of src.
func Unpack(src []byte, n uint64) ([]bool, error) {
	r, e := NewBitReader(src, n)
	if e != nil {
		return nil, e
	}
	bits := make([]bool, 0, n)
	for r.Remaining() > 0 {
		b, e := r.ReadBool()
		if e != nil {
			return nil, e
		}
		bits = append(bits, b)
	}
	return bits, nil
}
