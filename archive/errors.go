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

import "errors"
import "fmt"

var (
	ErrTruncated    = errors.New("length prefix exceeds available bytes")
	ErrTrailingData = errors.New("unexpected bytes after the last field")
	ErrTableSize    = errors.New("code table too large")
	ErrSymbolOrder  = errors.New("code table symbols not strictly ascending")
	ErrPadding      = errors.New("non-zero padding bits")
	ErrPayloadSize  = errors.New("payload length does not match bit length")
	ErrEmptyMix     = errors.New("bit length and code table disagree about empty input")
	ErrTooLarge     = errors.New("archive: encoded input exceeds 2^32-1 bits")
)

// FormatError reports a malformed or truncated container.
// Field names the container field the problem was found in.
type FormatError struct {
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	return "archive: malformed " + e.Field + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// IntegrityError reports that the decoded bytes do not hash to the stored checksum.
type IntegrityError struct {
	Want [32]byte
	Got  [32]byte
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("archive: checksum mismatch: stored %x, decoded %x", e.Want, e.Got)
}
