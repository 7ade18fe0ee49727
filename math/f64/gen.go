// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates the float64 variant from the float32 one. Invoke it
// as "go generate" from this directory.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var debug = flag.Bool("debug", false, "")

// The replacements are applied in order, so that "float32" is rewritten
// before the shorter "f32".
var replacements = []struct{ old, new string }{
	{"float32", "float64"},
	{"mgl32", "mgl64"},
	{"f32", "f64"},
}

// testReplacements are applied to test files only. The float32 tolerances do
// not carry over.
var testReplacements = []struct{ old, new string }{
	{"1e-6", "1e-14"},
}

func main() {
	flag.Parse()
	gen("f32.go", "f64.go")
	gen("f32_test.go", "f64_test.go")
}

func gen(src, dst string) {
	b, err := os.ReadFile(filepath.Join("..", "f32", src))
	if err != nil {
		log.Fatalf("reading %s: %v", src, err)
	}
	s := string(b)
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	if strings.HasSuffix(src, "_test.go") {
		for _, r := range testReplacements {
			s = strings.ReplaceAll(s, r.old, r.new)
		}
	}

	// The generated notice goes after the license header.
	header, body, ok := strings.Cut(s, "\n\n")
	if !ok {
		log.Fatalf("%s: no license header", src)
	}
	buf := new(bytes.Buffer)
	buf.WriteString(header)
	buf.WriteString("\n\n// Code generated by go run gen.go; DO NOT EDIT.\n\n")
	if !strings.HasSuffix(src, "_test.go") {
		buf.WriteString("//go:generate go run gen.go\n\n")
	}
	buf.WriteString(body)

	out, err := format.Source(buf.Bytes())
	if err != nil {
		if *debug {
			os.Stdout.Write(buf.Bytes())
		}
		log.Fatalf("formatting %s: %v", dst, err)
	}
	if err := os.WriteFile(dst, out, 0644); err != nil {
		log.Fatalf("writing %s: %v", dst, err)
	}
}
