package osutil

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	perrors "github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/wsyscall"
)

type commandRunner struct {
	dryRun bool
	logger log.DebugLogger
}

func (r *commandRunner) Run(name string, args ...string) (int, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	if r.dryRun {
		r.logger.Debugf(0, "dry run: skipping: %s\n", cmdline)
		return 0, nil
	}
	r.logger.Debugf(0, "running: %s\n", cmdline)
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		r.logger.Debugf(1, "%s", output)
	}
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if len(output) > 0 {
			r.logger.Printf("%s: %s", cmdline, output)
		}
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (r *commandRunner) Output(name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	if r.dryRun {
		r.logger.Debugf(0, "dry run: skipping: %s\n", cmdline)
		return nil, nil
	}
	r.logger.Debugf(0, "running: %s\n", cmdline)
	cmd := exec.Command(name, args...)
	output, err := cmd.Output()
	if err == nil {
		return output, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, perrors.NewExternalToolError(cmdline, exitErr.ExitCode(),
			nil)
	}
	return nil, perrors.NewExternalToolError(cmdline, -1, err)
}

func syncTimeout(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	waitChannel := make(chan struct{}, 1)
	go func() {
		wsyscall.Sync()
		waitChannel <- struct{}{}
	}()
	select {
	case <-timer.C:
		return fmt.Errorf("timed out waiting for sync() system call")
	case <-waitChannel:
		if !timer.Stop() {
			<-timer.C
		}
		return nil
	}
}
