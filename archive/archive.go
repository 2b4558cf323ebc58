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
Package archive compresses a whole buffer with a static Huffman code built from the
buffer itself and stores the result in a self-describing Container.

The container carries the exact bit count of the payload, a SHA-256 checksum of the
original bytes and the code table. Decompress refuses to return data whose checksum
does not match.
*/
package archive

import "crypto/sha256"
import "math"
import "github.com/maxymania/huffarc/huffmanblock"
import "github.com/maxymania/huffarc/huffmantable"

// Checksum returns the digest stored in a container for data.
func Checksum(data []byte) [checksumSize]byte {
	return sha256.Sum256(data)
}

// Compress encodes src. An empty src gives a container with no payload and an empty code table.
func Compress(src []byte) (*Container, error) {
	c := &Container{Checksum: Checksum(src), Payload: []byte{}}
	if len(src) == 0 {
		return c, nil
	}
	h := huffmantable.Scan(src)
	t, e := huffmantable.Build(&h)
	if e != nil {
		return nil, e
	}
	codes, e := t.Codes()
	if e != nil {
		return nil, e
	}
	if h.Score(codes) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	payload, n, e := huffmanblock.Encode(codes, src)
	if e != nil {
		return nil, e
	}
	c.BitLength = uint32(n)
	c.Payload = payload
	c.Codes = *codes
	return c, nil
}

// Decompress decodes c and verifies its checksum.
// On any error no decoded bytes are returned.
func Decompress(c *Container) ([]byte, error) {
	if uint64(len(c.Payload)) != huffmanblock.ByteLen(uint64(c.BitLength)) {
		return nil, &FormatError{Field: "payload", Err: ErrPayloadSize}
	}
	if (c.BitLength == 0) != (c.Codes.Len() == 0) {
		return nil, &FormatError{Field: "codeTable", Err: ErrEmptyMix}
	}
	if c.BitLength > 0 {
		if _, e := c.Codes.Tree(); e != nil {
			return nil, &FormatError{Field: "codeTable", Err: e}
		}
	}
	out, e := huffmanblock.Decode(&c.Codes, c.Payload, uint64(c.BitLength))
	if e != nil {
		return nil, &FormatError{Field: "payload", Err: e}
	}
	if sum := Checksum(out); sum != c.Checksum {
		return nil, &IntegrityError{Want: c.Checksum, Got: sum}
	}
	return out, nil
}

// CompressBytes returns the wire form of Compress(src).
func CompressBytes(src []byte) ([]byte, error) {
	c, e := Compress(src)
	if e != nil {
		return nil, e
	}
	return c.MarshalBinary()
}

// DecompressBytes parses and decompresses a container in wire form.
func DecompressBytes(data []byte) ([]byte, error) {
	c := new(Container)
	if e := c.UnmarshalBinary(data); e != nil {
		return nil, e
	}
	return Decompress(c)
}
