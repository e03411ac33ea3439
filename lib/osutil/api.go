package osutil

import (
	"time"

	"github.com/Cloud-Foundations/postinst/lib/log"
)

// CommandRunner runs external programmes.
type CommandRunner interface {
	// Run will run the named programme and wait for it to exit. The exit code
	// is returned. An error is returned only if the programme could not be
	// run at all.
	Run(name string, args ...string) (int, error)

	// Output is similar to Run, except the standard output of the programme
	// is returned. A non-zero exit code is returned as an error.
	Output(name string, args ...string) ([]byte, error)
}

// NewCommandRunner returns a CommandRunner which executes programmes and logs
// their output. If dryRun is true, commands are logged but not run and report
// success.
func NewCommandRunner(logger log.DebugLogger, dryRun bool) CommandRunner {
	return &commandRunner{dryRun: dryRun, logger: logger}
}

// SyncTimeout will call the sync() system call and wait for it to complete or
// for the timeout to expire.
func SyncTimeout(timeout time.Duration) error {
	return syncTimeout(timeout)
}
