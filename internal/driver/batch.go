package driver

import (
	"fmt"
	"io/ioutil"

	"github.com/vs-ude/skslc/internal/sksl"
)

// RunBatch searches the argument vector for `--` delimiters and runs one
// job per delimited segment. args[0] is the program name; it stays at
// the head of every job slice and is never cleared. The returned code is
// the worst outcome across all jobs; a batch with zero complete jobs
// yields Success.
func (d *Driver) RunBatch(args []string) ResultCode {
	if len(args) == 0 {
		return Success
	}
	result := Success
	job := append([]string(nil), args[0])
	for _, arg := range args[1:] {
		if arg != "--" {
			// We found an argument. Remember it.
			job = append(job, arg)
			continue
		}
		// We found a delimiter. If we have any arguments stored up,
		// process them as one job.
		if len(job) > 1 {
			result = Worst(result, d.RunJob(job))
			job = job[:1]
		}
	}
	// Execute the final job in the batch.
	if len(job) > 1 {
		result = Worst(result, d.RunJob(job))
	}
	return result
}

// RunJob handles a single job slice: argument validation, source
// loading, directive detection and dispatch to the output emitter.
func (d *Driver) RunJob(args []string) ResultCode {
	job, rc := d.buildJob(args)
	if rc != Success {
		return rc
	}

	data, err := ioutil.ReadFile(job.InputPath)
	if err != nil {
		fmt.Fprintf(d.out, "error reading '%s'\n", job.InputPath)
		return InputError
	}
	source := string(data)

	settings := sksl.DefaultSettings()
	if job.HonorSettings {
		if !d.detectSettings(source, &settings) {
			return InputError
		}
	}
	return d.dispatch(job, source, settings)
}
