package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vs-ude/skslc/internal/config"
	"github.com/vs-ude/skslc/internal/driver"
)

const (
	helpCommand string = "help"
	envCommand  string = "env"
)

var help = `
` + driver.Usage + `
Multiple jobs are separated by --. The exit code is the worst outcome of
the batch: 0 success, 1 compile error, 2 input error, 3 output error.

Commands:
  help Prints this help message.
  env  Prints environment variables and configuration used by the compiler.

Flags:
`

// commandWord returns the command named by the positional arguments, or
// "" when they form a compile batch. A command word is only honored as
// the sole flagless argument, since batch jobs may legitimately name
// input files "help" or "env".
func commandWord(args []string, nflags int) string {
	if nflags != 0 || len(args) != 1 {
		return ""
	}
	switch args[0] {
	case helpCommand, envCommand:
		return args[0]
	}
	return ""
}

func commands() {
	switch commandWord(flag.Args(), flag.NFlag()) {
	case helpCommand:
		printHelp()
		os.Exit(0)
	case envCommand:
		config.PrintConf()
		os.Exit(0)
	}
}

func printHelp() {
	fmt.Print(help)
	flag.PrintDefaults()
}
