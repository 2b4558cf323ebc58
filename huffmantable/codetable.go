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

package huffmantable

import "errors"
import "fmt"
import "strings"
import "github.com/icza/huffman"

var (
	ErrInvalidCode   = errors.New("huffmantable: invalid code length")
	ErrNotPrefixFree = errors.New("huffmantable: code is a prefix of another code")
)

// Code is a bit string of Len bits stored in the low bits of Bits.
// The most significant of those bits is the first one on the wire.
// This is the layout huffman.Node.Code returns.
type Code struct {
	Bits uint64
	Len  uint8
}

// Get returns the code in the argument order of bitio.Writer.WriteBits.
func (c Code) Get() (uint64, uint8) { return c.Bits, c.Len }

// Bit returns the i-th bit of the code, counted from the first.
func (c Code) Bit(i int) bool {
	return (c.Bits>>(uint(c.Len)-1-uint(i)))&1 == 1
}

func (c Code) String() string {
	if c.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(c.Len), c.Bits)
}

// CodeTable maps every byte value to its code. A zero Len means no code.
type CodeTable struct {
	T [256]Code
}

// Set assigns a code to b.
func (t *CodeTable) Set(b byte, c Code) { t.T[b] = c }

// Lookup returns the code of b and whether b has one.
func (t *CodeTable) Lookup(b byte) (Code, bool) {
	c := t.T[b]
	return c, c.Len > 0
}

// Len returns the number of bytes with a code.
func (t *CodeTable) Len() (n int) {
	for _, c := range t.T {
		if c.Len > 0 {
			n++
		}
	}
	return
}

// PrefixFree reports whether the table is a valid prefix code.
func (t *CodeTable) PrefixFree() bool {
	_, e := t.Tree()
	return e == nil
}

func (t *CodeTable) String() string {
	var sb strings.Builder
	for i, c := range t.T {
		if c.Len == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x:%s", i, c)
	}
	return sb.String()
}

// Tree rebuilds a decoding tree from the table. Internal nodes carry the value -1.
// Branches no code passes through are left nil, so the tree need not be full.
func (t *CodeTable) Tree() (*huffman.Node, error) {
	root := &huffman.Node{Value: -1}
	n := 0
	for i, c := range t.T {
		if c.Len == 0 {
			continue
		}
		if c.Len > MaxCodeLen {
			return nil, fmt.Errorf("%w: byte %#02x has %d bits", ErrInvalidCode, i, c.Len)
		}
		if c.Len < MaxCodeLen && c.Bits>>c.Len != 0 {
			return nil, fmt.Errorf("%w: byte %#02x has bits beyond its length", ErrInvalidCode, i)
		}
		if e := insert(root, c, huffman.ValueType(i)); e != nil {
			return nil, fmt.Errorf("%w: byte %#02x code %s", e, i, c)
		}
		n++
	}
	if n == 0 {
		return nil, ErrEmpty
	}
	return root, nil
}

func insert(root *huffman.Node, c Code, v huffman.ValueType) error {
	n := root
	for i := 0; i < int(c.Len); i++ {
		if n.Value >= 0 {
			return ErrNotPrefixFree
		}
		next := &n.Left
		if c.Bit(i) {
			next = &n.Right
		}
		if *next == nil {
			*next = &huffman.Node{Parent: n, Value: -1}
		}
		n = *next
	}
	if n.Value >= 0 || n.Left != nil || n.Right != nil {
		return ErrNotPrefixFree
	}
	n.Value = v
	return nil
}
