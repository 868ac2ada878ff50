package main

import (
	"flag"
	"os"

	"github.com/vs-ude/skslc/internal/driver"
)

// The compiler version info
var (
	version   string = "dev"
	buildDate string = "-"
)

func main() {
	flag.Parse()
	commands()
	setupCommonFlags()
	d := driver.New(setupToolchain())

	// Every job slice keeps argv[0] at its head, so rebuild the vector
	// from the program name and the unparsed arguments.
	args := append([]string{os.Args[0]}, flag.Args()...)
	os.Exit(int(d.RunBatch(args)))
}
