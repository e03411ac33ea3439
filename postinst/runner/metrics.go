package runner

import (
	"sync"
	"time"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

var (
	registerOnce sync.Once

	numRuns               uint64
	numFailedRuns         uint64
	lastRunDuration       float64
	lastRunSucceeded      bool
	lastPartitionCommit   time.Time
	partitionCommitPeriod float64
)

func registerMetrics() {
	dir, err := tricorder.RegisterDirectory(constants.MetricsDirectory)
	if err != nil {
		panic(err)
	}
	dir.RegisterMetric("num-runs", &numRuns, units.None,
		"number of post-install runs")
	dir.RegisterMetric("num-failed-runs", &numFailedRuns, units.None,
		"number of failed post-install runs")
	dir.RegisterMetric("last-run-duration", &lastRunDuration, units.Second,
		"duration of the last post-install run")
	dir.RegisterMetric("last-run-succeeded", &lastRunSucceeded, units.None,
		"true if the last post-install run succeeded")
	dir.RegisterMetric("gpt/last-commit-time", &lastPartitionCommit,
		units.None, "time the partition table was last committed")
	dir.RegisterMetric("gpt/commit-duration", &partitionCommitPeriod,
		units.Second, "time taken to commit the partition table")
}

func recordPartitionCommit(startTime time.Time) {
	lastPartitionCommit = time.Now()
	partitionCommitPeriod = lastPartitionCommit.Sub(startTime).Seconds()
}

func recordRun(startTime time.Time, err error) {
	numRuns++
	lastRunDuration = time.Since(startTime).Seconds()
	lastRunSucceeded = err == nil
	if err != nil {
		numFailedRuns++
	}
}
