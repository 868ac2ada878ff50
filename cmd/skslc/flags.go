package main

import (
	"flag"

	"github.com/vs-ude/skslc/internal/config"
)

var flagVerbose bool
var flagToolchainConf string

func init() {
	// Common flags
	flag.BoolVar(&flagVerbose, "v", false, "More verbose output while compiling. Mostly helpful for compiler development.")
	flag.StringVar(&flagToolchainConf, "c", "", "Name of a toolchain configuration file. A JSON file of the same name must be located in the configuration directory.")
}

func setupCommonFlags() {
	if flagVerbose {
		config.Set("verbose", flagVerbose)
	}
}
