// Command jdom reads JSON documents, optionally navigates a dot
// separated path, and prints them compact or pretty.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alxarch/jdom"
)

var (
	prettyOutput = flag.Bool("pretty", false, "Pretty print output.")
	lookupPath   = flag.String("p", "", "Dot separated path of object keys and list indices to print.")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [file...]:\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "jdom: ", log.LstdFlags)
	doc := jdom.Document{}
	roots := make([]jdom.View, 0, flag.NArg())
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatalf("Failed to read stdin: %s", err)
		}
		root, err := doc.Parse(string(data))
		if err != nil {
			logger.Fatalf("Failed to parse stdin: %s", err)
		}
		roots = append(roots, root)
	}
	for _, name := range flag.Args() {
		root, err := doc.LoadFile(name)
		if err != nil {
			logger.Fatalf("Failed to load %q: %s", name, err)
		}
		roots = append(roots, root)
	}
	for _, root := range roots {
		if *lookupPath != "" {
			root = root.Lookup(strings.Split(*lookupPath, ".")...)
			if err := root.Err(); err != nil {
				logger.Fatalf("Failed to resolve path %q: %s", *lookupPath, err)
			}
		}
		out, err := render(root)
		if err != nil {
			logger.Fatalf("Failed to serialize: %s", err)
		}
		if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
			logger.Fatalf("Failed to write output: %s", err)
		}
	}
}

func render(root jdom.View) ([]byte, error) {
	if *prettyOutput {
		return root.AppendPretty(nil)
	}
	return root.AppendJSON(nil)
}
