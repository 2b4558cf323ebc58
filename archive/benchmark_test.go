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
	"io"
	"testing"

	"github.com/icza/huffman/hufio"
	"github.com/klauspost/compress/zstd"
)

// Static Huffman against the adaptive hufio stream and zstd on the same inputs.
func BenchmarkCompressComparison(b *testing.B) {
	for name, src := range testInputs() {
		if len(src) < 1024 {
			continue
		}
		b.Run(name, func(b *testing.B) {
			b.Run("huffarc", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(src)))
				var out []byte
				for i := 0; i < b.N; i++ {
					var err error
					if out, err = CompressBytes(src); err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(len(src))/float64(len(out)), "ratio")
			})

			b.Run("hufio", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(src)))
				buf := new(bytes.Buffer)
				for i := 0; i < b.N; i++ {
					buf.Reset()
					w := hufio.NewWriter(buf)
					if _, err := w.Write(src); err != nil {
						b.Fatal(err)
					}
					if err := w.Close(); err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(len(src))/float64(buf.Len()), "ratio")

				back, err := io.ReadAll(hufio.NewReader(bytes.NewReader(buf.Bytes())))
				if err != nil || !bytes.Equal(back, src) {
					b.Fatalf("hufio round trip failed: %v", err)
				}
			})

			b.Run("zstd", func(b *testing.B) {
				enc, err := zstd.NewWriter(nil)
				if err != nil {
					b.Fatal(err)
				}
				defer enc.Close()
				b.ReportAllocs()
				b.SetBytes(int64(len(src)))
				var out []byte
				for i := 0; i < b.N; i++ {
					out = enc.EncodeAll(src, out[:0])
				}
				b.ReportMetric(float64(len(src))/float64(len(out)), "ratio")
			})
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	src := testInputs()["text"]
	c, err := Compress(src)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(c); err != nil {
			b.Fatal(err)
		}
	}
}
