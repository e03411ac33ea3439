// Package activate marks a freshly installed slot as the one to boot next.
package activate

import (
	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const (
	StepInitialize         = "initialize"
	StepSetHighestPriority = "set highest priority"
	StepSetTriesLeft       = "set tries left"
	StepSetSuccessful      = "set successful"
	StepClose              = "close"
)

// Commit updates the partition table attributes of the plan's root partition
// so that firmware will choose it on the next boot: highest priority, one try
// left, and marked successful unless this is an ordinary update. Any failure
// is returned as a TransactionError naming the step; later steps are not
// attempted and earlier ones are not reverted.
func Commit(plan *install.Plan, ctx install.Context, store gpt.AttributeStore,
	logger log.DebugLogger) error {
	return commit(plan, ctx, store, logger)
}
