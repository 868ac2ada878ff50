package driver

import (
	"fmt"
)

// Usage describes the accepted invocation shapes; it is shown whenever
// the command line arguments don't make sense.
const Usage = `usage: skslc <input> <output> <flags> -- <input2> <output2> <flags> -- ...

Allowed flags:
--settings:   honor embedded /*#pragma settings*/ comments.
--nosettings: ignore /*#pragma settings*/ comments
`

func (d *Driver) printUsage() {
	fmt.Fprint(d.out, Usage)
}
