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

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("aaabbc"))
	f.Add(bytes.Repeat([]byte{0x41}, 1000))
	f.Add([]byte("null\x00byte\xff\xfe"))

	f.Fuzz(func(t *testing.T, src []byte) {
		packed, err := CompressBytes(src)
		if err != nil {
			t.Fatalf("compress: %v", err)
		}
		got, err := DecompressBytes(packed)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if !bytes.Equal(src, got) {
			t.Fatalf("round trip mismatch: %q != %q", got, src)
		}
	})
}

// Arbitrary input must either decode or fail with one of the two container errors.
func FuzzDecompress(f *testing.F) {
	for _, s := range []string{"", "a", "aaabbc", "hello world"} {
		packed, _ := CompressBytes([]byte(s))
		f.Add(packed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := DecompressBytes(data)
		if err == nil {
			return
		}
		if out != nil {
			t.Fatalf("data returned with error %v", err)
		}
		var fe *FormatError
		var ie *IntegrityError
		if !errors.As(err, &fe) && !errors.As(err, &ie) {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
	})
}
