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

// Block based static huffman coding.
//
// A block is the concatenation of the codes of its bytes, packed most significant
// bit first. The exact bit count travels next to the packed bytes, so the zero bits
// padding the last byte are never taken for data.
package huffmanblock

import "bytes"
import "errors"
import "fmt"
import "io"
import "github.com/maxymania/huffarc/huffmantable"

var (
	ErrNoCode       = errors.New("huffmanblock: byte has no code")
	ErrDeadEnd      = errors.New("huffmanblock: bit sequence matches no code")
	ErrDanglingBits = errors.New("huffmanblock: bit sequence ends inside a code")
)

// Encode writes the code of every byte of src and returns the packed bits
// together with their exact count.
func Encode(codes *huffmantable.CodeTable, src []byte) ([]byte, uint64, error) {
	buf := new(bytes.Buffer)
	w := NewBitWriter(buf)
	for _, b := range src {
		c, ok := codes.Lookup(b)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %#02x", ErrNoCode, b)
		}
		if e := w.WriteBits(c.Get()); e != nil {
			return nil, 0, e
		}
	}
	if e := w.Close(); e != nil {
		return nil, 0, e
	}
	return buf.Bytes(), w.Count(), nil
}

// Decode reverses Encode. Only the first n bits of src are consumed.
func Decode(codes *huffmantable.CodeTable, src []byte, n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	root, e := codes.Tree()
	if e != nil {
		return nil, e
	}
	r, e := NewBitReader(src, n)
	if e != nil {
		return nil, e
	}
	dst := make([]byte, 0, len(src))
	for r.Remaining() > 0 {
		node := root
		for node.Value < 0 {
			b, e := r.ReadBool()
			if e == io.EOF {
				return nil, fmt.Errorf("%w after %d bytes", ErrDanglingBits, len(dst))
			}
			if e != nil {
				return nil, e
			}
			if b {
				node = node.Right
			} else {
				node = node.Left
			}
			if node == nil {
				return nil, fmt.Errorf("%w after %d bytes", ErrDeadEnd, len(dst))
			}
		}
		dst = append(dst, byte(node.Value))
	}
	return dst, nil
}
