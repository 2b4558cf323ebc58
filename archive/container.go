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

package archive

import "bytes"
import "encoding/binary"
import "fmt"
import "io"
import "github.com/icza/bitio"
import "github.com/maxymania/huffarc/huffmanblock"
import "github.com/maxymania/huffarc/huffmantable"

// Wire format:
//
//	bitLength = uint32 big-endian, meaningful bits in payload
//	checksum  = 32 bytes, SHA-256 of the original bytes
//	payload   = ceil(bitLength/8) bytes, MSB first, zero padded
//	tableLen  = uint32 big-endian
//	table     = tableLen bytes:
//	  count = uint16 big-endian (0..256)
//	  repeat count times, symbols ascending:
//	    symbol = uint8
//	    len    = uint8 (1..64)
//	    code   = ceil(len/8) bytes, MSB first, zero padded
const (
	checksumSize = 32
	maxTableLen  = 2 + 256*(2+huffmantable.MaxCodeLen/8)
)

// Container is the complete compressed artifact.
type Container struct {
	BitLength uint32
	Checksum  [checksumSize]byte
	Payload   []byte
	Codes     huffmantable.CodeTable
}

// MarshalBinary returns the wire form of c.
func (c *Container) MarshalBinary() ([]byte, error) {
	if uint64(len(c.Payload)) != huffmanblock.ByteLen(uint64(c.BitLength)) {
		return nil, fmt.Errorf("archive: %w: %d bytes for %d bits", ErrPayloadSize, len(c.Payload), c.BitLength)
	}
	table, e := marshalCodes(&c.Codes)
	if e != nil {
		return nil, e
	}
	buf := make([]byte, 0, 4+checksumSize+len(c.Payload)+4+len(table))
	buf = binary.BigEndian.AppendUint32(buf, c.BitLength)
	buf = append(buf, c.Checksum[:]...)
	buf = append(buf, c.Payload...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(table)))
	buf = append(buf, table...)
	return buf, nil
}

// WriteTo writes the container with a single Write call,
// so a failed marshal leaves nothing behind in w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	b, e := c.MarshalBinary()
	if e != nil {
		return 0, e
	}
	n, e := w.Write(b)
	if e != nil {
		return int64(n), e
	}
	if n != len(b) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// UnmarshalBinary parses data, which must hold exactly one container.
func (c *Container) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	x, e := ReadContainer(r)
	if e != nil {
		return e
	}
	if r.Len() > 0 {
		return &FormatError{Field: "container", Err: ErrTrailingData}
	}
	*c = *x
	return nil
}

// ReadContainer reads one container from r. Reading stops right after the code table.
func ReadContainer(r io.Reader) (*Container, error) {
	c := new(Container)
	var e error
	if c.BitLength, e = readU32(r); e != nil {
		return nil, readErr("bitLength", e)
	}
	if _, e = io.ReadFull(r, c.Checksum[:]); e != nil {
		return nil, readErr("checksum", e)
	}
	if c.Payload, e = readN(r, huffmanblock.ByteLen(uint64(c.BitLength))); e != nil {
		return nil, readErr("payload", e)
	}
	tableLen, e := readU32(r)
	if e != nil {
		return nil, readErr("codeTable", e)
	}
	if tableLen > maxTableLen {
		return nil, &FormatError{Field: "codeTable", Err: fmt.Errorf("%w: %d bytes", ErrTableSize, tableLen)}
	}
	table, e := readN(r, uint64(tableLen))
	if e != nil {
		return nil, readErr("codeTable", e)
	}
	if e = unmarshalCodes(table, &c.Codes); e != nil {
		return nil, &FormatError{Field: "codeTable", Err: e}
	}
	return c, nil
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	if e := binary.Read(r, binary.BigEndian, &v); e != nil {
		return 0, e
	}
	return v, nil
}

func readN(r io.Reader, n uint64) ([]byte, error) {
	b, e := io.ReadAll(io.LimitReader(r, int64(n)))
	if e != nil {
		return nil, e
	}
	if uint64(len(b)) < n {
		return nil, io.ErrUnexpectedEOF
	}
	return b, nil
}

func readErr(field string, e error) error {
	if e == io.EOF || e == io.ErrUnexpectedEOF {
		return &FormatError{Field: field, Err: ErrTruncated}
	}
	return fmt.Errorf("archive: reading %s: %w", field, e)
}

func marshalCodes(t *huffmantable.CodeTable) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	w.WriteBits(uint64(t.Len()), 16)
	for i, c := range t.T {
		if c.Len == 0 {
			continue
		}
		if c.Len > huffmantable.MaxCodeLen {
			return nil, fmt.Errorf("archive: %w: byte %#02x has %d bits", huffmantable.ErrInvalidCode, i, c.Len)
		}
		w.WriteByte(byte(i))
		w.WriteByte(c.Len)
		w.WriteBits(c.Get())
		w.Align()
	}
	if e := w.Close(); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

func unmarshalCodes(body []byte, t *huffmantable.CodeTable) error {
	if len(body) < 2 {
		return ErrTruncated
	}
	r := bitio.NewReader(bytes.NewReader(body))
	count, _ := r.ReadBits(16)
	if count > 256 {
		return fmt.Errorf("%w: %d entries", ErrTableSize, count)
	}
	used, prev := 2, -1
	for i := 0; i < int(count); i++ {
		if used+2 > len(body) {
			return ErrTruncated
		}
		sym, _ := r.ReadByte()
		n, _ := r.ReadByte()
		used += 2
		if int(sym) <= prev {
			return fmt.Errorf("%w: %#02x after %#02x", ErrSymbolOrder, sym, prev)
		}
		if n == 0 || n > huffmantable.MaxCodeLen {
			return fmt.Errorf("%w: byte %#02x has %d bits", huffmantable.ErrInvalidCode, sym, n)
		}
		size := (int(n) + 7) / 8
		if used+size > len(body) {
			return ErrTruncated
		}
		bits, _ := r.ReadBits(n)
		if pad := uint8(size*8 - int(n)); pad > 0 {
			if p, _ := r.ReadBits(pad); p != 0 {
				return fmt.Errorf("%w: code of byte %#02x", ErrPadding, sym)
			}
		}
		used += size
		t.Set(sym, huffmantable.Code{Bits: bits, Len: n})
		prev = int(sym)
	}
	if used != len(body) {
		return ErrTrailingData
	}
	return nil
}
