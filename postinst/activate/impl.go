package activate

import (
	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const triesLeft = 1

func commit(plan *install.Plan, ctx install.Context, store gpt.AttributeStore,
	logger log.DebugLogger) error {
	root := plan.Root
	successful := !ctx.IsUpdate()
	logger.Printf("updating partition table attributes for %s (%s)\n",
		root.Device, ctx)
	steps := []struct {
		name string
		fn   func() error
	}{
		{StepInitialize, func() error {
			return store.Initialize(root.BaseDevice)
		}},
		{StepSetHighestPriority, func() error {
			return store.SetHighestPriority(root.Number)
		}},
		{StepSetTriesLeft, func() error {
			return store.SetTriesLeft(root.Number, triesLeft)
		}},
		{StepSetSuccessful, func() error {
			return store.SetSuccessful(root.Number, successful)
		}},
		{StepClose, store.Close},
	}
	for _, step := range steps {
		logger.Debugf(0, "GPT: %s: partition %d on %s\n",
			step.name, root.Number, root.BaseDevice)
		if err := step.fn(); err != nil {
			if step.name != StepClose && step.name != StepInitialize {
				if err := store.Close(); err != nil {
					logger.Printf("error closing partition table on %s: %s\n",
						root.BaseDevice, err)
				}
			}
			return errors.NewTransactionError(step.name, root.BaseDevice,
				root.Number, err)
		}
	}
	logger.Printf(
		"updated partition %d: highest priority, tries=%d, successful=%v\n",
		root.Number, triesLeft, successful)
	return nil
}
