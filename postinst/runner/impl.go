package runner

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/postinst/image"
)

func newRunner(params Params) *Runner {
	if params.SystemRoot == "" {
		params.SystemRoot = "/"
	}
	if params.BootMountPoint == "" {
		params.BootMountPoint = constants.DefaultBootMountPoint
	}
	if params.ProcDirectory == "" {
		params.ProcDirectory = constants.ProcDirectory
	}
	r := &Runner{
		params:    params,
		finalizer: params.Finalizer,
		logger:    params.Logger,
		mounter:   params.Mounter,
		runner:    params.CommandRunner,
		store:     params.Store,
	}
	if r.runner == nil {
		r.runner = osutil.NewCommandRunner(r.logger, params.DryRun)
	}
	if r.finalizer == nil {
		r.finalizer = image.New(r.runner,
			image.Options{DryRun: params.DryRun}, r.logger)
	}
	if r.mounter == nil {
		r.mounter = NewMounter(r.runner, r.path(constants.ProcMounts),
			params.DryRun, r.logger)
	}
	if r.store == nil {
		if params.DryRun {
			r.store = gpt.NewMemoryStore(params.Layout.DryRunEntries(),
				r.logger)
		} else {
			r.store = gpt.NewDiskStore(r.logger)
		}
	}
	registerOnce.Do(registerMetrics)
	return r
}

func runPostInstall(params Params) int {
	if err := New(params).Run(); err != nil {
		params.Logger.Printf("post-install failed: %s\n", err)
		return 1
	}
	params.Logger.Println("post-install complete")
	return 0
}

// fail records a failure which does not stop the run.
func (r *Runner) fail(err error) {
	r.failures = append(r.failures, err)
}

func (r *Runner) path(elements ...string) string {
	return filepath.Join(append([]string{r.params.SystemRoot}, elements...)...)
}

// report logs a failed best-effort step and returns the outcome.
func (r *Runner) report(outcome Outcome) Outcome {
	if !outcome.Ok() {
		r.logger.Printf("%s failed: %s\n", outcome.Name, outcome.Err)
	}
	return outcome
}

func (r *Runner) run() error {
	startTime := time.Now()
	r.failures = nil
	err := r.runSteps()
	if len(r.failures) > 0 {
		err = errors.Join(append([]error{err}, r.failures...)...)
	}
	recordRun(startTime, err)
	return err
}
