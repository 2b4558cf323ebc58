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

/*
Package huffmantable derives a static Huffman code from the byte frequencies of an input.

The tree is built with github.com/icza/huffman. Leaves are handed over in ascending
byte order and the library sorts them stably by count, so nodes of equal weight are
always merged in (count, byte value) order and identical inputs yield identical trees.
The first node taken from the queue becomes the left child and is reached by a 0 bit.

Only the leaf to code mapping (CodeTable) leaves this package; a decoder rebuilds
its tree from that mapping with CodeTable.Tree.
*/
package huffmantable

import "errors"
import "github.com/icza/huffman"

// Phantom is the value of the unused sibling a single-symbol tree is padded with.
const Phantom = 256

// MaxCodeLen is the longest code a CodeTable can hold.
const MaxCodeLen = 64

var (
	ErrEmpty       = errors.New("huffmantable: no symbols")
	ErrCodeTooLong = errors.New("huffmantable: code longer than 64 bits")
)

// Table is a Huffman tree over byte values. T[b] is the leaf of byte b,
// or nil if b does not occur. T[Phantom] is only set for single-symbol inputs.
type Table struct {
	T [257]*huffman.Node
	R *huffman.Node
}

// Build constructs the Huffman tree for h.
func Build(h *Histogram) (*Table, error) {
	t := new(Table)
	leaves := make([]*huffman.Node, 0, 257)
	for i, c := range h {
		if c == 0 {
			continue
		}
		t.T[i] = &huffman.Node{Value: huffman.ValueType(i), Count: c}
		leaves = append(leaves, t.T[i])
	}
	switch len(leaves) {
	case 0:
		return nil, ErrEmpty
	case 1:
		// A lone leaf would be the root and get an empty code.
		t.T[Phantom] = &huffman.Node{Value: Phantom}
		leaves = append(leaves, t.T[Phantom])
	}
	t.R = huffman.Build(leaves)
	return t, nil
}

// Print writes the tree to standard output.
func (t *Table) Print() {
	huffman.Print(t.R)
}

// Codes walks the tree from the root and collects the code of every byte leaf.
func (t *Table) Codes() (*CodeTable, error) {
	c := new(CodeTable)
	if e := walk(c, t.R, 0, 0); e != nil {
		return nil, e
	}
	return c, nil
}

func walk(c *CodeTable, n *huffman.Node, bits uint64, depth int) error {
	if n.Left == nil {
		if depth > MaxCodeLen {
			return ErrCodeTooLong
		}
		if n.Value != Phantom {
			c.T[n.Value] = Code{Bits: bits, Len: uint8(depth)}
		}
		return nil
	}
	if e := walk(c, n.Left, bits<<1, depth+1); e != nil {
		return e
	}
	return walk(c, n.Right, bits<<1|1, depth+1)
}
