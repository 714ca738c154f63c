// Copyright (c) 2024 The jpjson Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command jsonlint validates (and optionally canonicalizes) a JSON text
// read from a file argument or from stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/couchdeveloper/jpjson/jpjson"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// doMain is separated out from main for the purpose of unit testing.
func doMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("jsonlint", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		help                bool
		printResult         bool
		multipleDocuments   bool
		ignoreTrailingBytes bool
		checkDuplicateKey   bool
		allowComments       bool
		allowControlChars   bool
		allowLeadingPlus    bool
		allowLeadingZeros   bool
	)
	flags.BoolVarP(&help, "help", "h", false, "print this help message")
	flags.BoolVarP(&printResult, "print", "p", false, "print the canonicalized document on success")
	flags.BoolVar(&multipleDocuments, "multiple-documents", false, "accept a stream of concatenated top-level documents")
	flags.BoolVar(&ignoreTrailingBytes, "ignore-trailing-bytes", false, "ignore content following the first document instead of erroring")
	flags.BoolVar(&checkDuplicateKey, "check-duplicate-key", false, "reject an object with a repeated key")
	flags.BoolVar(&allowComments, "allow-comments", false, "accept // and /* */ comments")
	flags.BoolVar(&allowControlChars, "allow-control-characters", false, "accept raw control characters inside strings")
	flags.BoolVar(&allowLeadingPlus, "allow-leading-plus", false, "accept a leading '+' on numbers")
	flags.BoolVar(&allowLeadingZeros, "allow-leading-zeros", false, "accept leading zeros in an integer part")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if help {
		fmt.Fprintln(stderr, "usage: jsonlint [flags] [file]")
		flags.PrintDefaults()
		return 0
	}

	var r io.Reader = stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "jsonlint:", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	cfg := jpjson.DefaultConfig()
	cfg.ParseMultipleDocuments = multipleDocuments
	cfg.IgnoreSpuriousTrailingBytes = ignoreTrailingBytes
	cfg.CheckDuplicateKey = checkDuplicateKey
	cfg.Extensions.AllowComments = allowComments
	cfg.Extensions.AllowControlCharacters = allowControlChars
	cfg.Extensions.AllowLeadingPlusInNumbers = allowLeadingPlus
	cfg.Extensions.AllowLeadingZerosInIntegers = allowLeadingZeros

	sink := jpjson.NewRecordingSink()
	if err := jpjson.Parse(context.Background(), r, jpjson.AnyEncoding, cfg, sink); err != nil {
		fmt.Fprintln(stderr, "jsonlint:", err)
		return 1
	}

	if printResult {
		if result, ok := sink.Result(); ok {
			fmt.Fprintln(stdout, result)
		}
	}
	return 0
}
