// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program plistfmt reformats an OpenStep/NeXTSTEP property-list file,
// exercising the plist package's decoder and encoder end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/creachadair/plist"
)

var (
	indentWidth = flag.Int("indent", 2, "indent width in spaces (ignored with -tabs)")
	useTabs     = flag.Bool("tabs", false, "indent with tabs instead of spaces")
	checkOnly   = flag.Bool("check", false, "only check that the input parses; do not print output")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("plistfmt: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	v, err := plist.Decode(data)
	if err != nil {
		log.Fatalf("decoding: %v", err)
	}
	if *checkOnly {
		return
	}

	cfg := plist.EncodingConfig{Indentation: indentation()}
	if err := plist.Encode(os.Stdout, v, cfg); err != nil {
		log.Fatalf("encoding: %v", err)
	}
}

func indentation() plist.Indentation {
	if *useTabs {
		return plist.Tabs()
	}
	return plist.Spaces(*indentWidth)
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
