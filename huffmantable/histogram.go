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

// Histogram holds the occurrence count of every byte value.
// A zero entry means the byte does not occur.
type Histogram [256]int

// Scan counts the bytes of src.
func Scan(src []byte) Histogram {
	var h Histogram
	h.scan(src)
	return h
}

func (h *Histogram) scan(src []byte) {
	for i := range h {
		h[i] = 0
	}
	for _, b := range src {
		h[b]++
	}
}

// Distinct returns the number of byte values with a non-zero count.
func (h *Histogram) Distinct() (n int) {
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return
}

// Total returns the sum of all counts, which is the length of the scanned input.
func (h *Histogram) Total() (n int) {
	for _, c := range h {
		n += c
	}
	return
}

// Score returns the number of bits needed to encode the scanned input with codes.
func (h *Histogram) Score(codes *CodeTable) (total uint64) {
	for i, n := range h {
		total += uint64(codes.T[i].Len) * uint64(n)
	}
	return
}
