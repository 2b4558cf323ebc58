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

// Huffman archiver.
//
//	huffarc -c input [output]
//	  Creates output, or input.huff. ".huff" is appended to output if missing.
//
//	huffarc -d input.huff [output]
//	  Creates output, or input without ".huff".
//
// An existing output file is never replaced unless -f is given;
// "name(1).ext", "name(2).ext", ... is used instead.
package main

import "errors"
import "flag"
import "io"
import "os"
import "github.com/maxymania/huffarc/internal/logger"

const suffix = ".huff"

var errUsage = errors.New("usage: huffarc (-c input | -d input.huff) [-v] [-t] [-f] [output]")

type options struct {
	compress   string
	decompress string
	output     string
	verbose    bool
	tree       bool
	force      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := new(options)
	fs := flag.NewFlagSet("huffarc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.compress, "c", "", "compress `input`")
	fs.StringVar(&o.decompress, "d", "", "decompress `input`.huff")
	fs.BoolVar(&o.verbose, "v", false, "report sizes and compression ratio")
	fs.BoolVar(&o.tree, "t", false, "print the Huffman tree when compressing")
	fs.BoolVar(&o.force, "f", false, "overwrite an existing output file")
	if e := fs.Parse(args); e != nil {
		return nil, e
	}
	if (o.compress == "") == (o.decompress == "") || fs.NArg() > 1 {
		return nil, errUsage
	}
	o.output = fs.Arg(0)
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, e := parseFlags(args, stderr)
	if e != nil {
		if e != flag.ErrHelp {
			io.WriteString(stderr, e.Error()+"\n")
		}
		return 2
	}
	log := logger.New(stderr, o.verbose)
	if o.compress != "" {
		e = compressFile(o, stdout, log)
	} else {
		e = decompressFile(o, log)
	}
	if e != nil {
		log.Errorf("%v", e)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
