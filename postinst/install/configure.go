package install

import (
	"fmt"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
)

func configure(params Params) (*Plan, error) {
	root, err := parsePartitionDevice(params.InstallDevice)
	if err != nil {
		return nil, err
	}
	layout := params.Layout
	if layout.Name == "" {
		layout = LayoutRoot
	}
	slot, ok := layout.slotForNumber(root.Number)
	if !ok {
		return nil, errors.NewInvalidTargetError(
			fmt.Sprintf("partition %d is not a root partition in the %s layout",
				root.Number, layout.Name))
	}
	root.MountPoint = params.InstallDirectory
	plan := &Plan{
		Slot:         slot,
		Root:         root,
		Boot:         NewPartition(root.BaseDevice, layout.BootNumber),
		FirmwareType: params.FirmwareType,
		Layout:       layout.Name,
	}
	if layout.KernelOffset > 0 {
		plan.Kernel = NewPartition(root.BaseDevice,
			root.Number-layout.KernelOffset)
	}
	if plan.FirmwareType == firmware.TypeUnknown {
		procDirectory := params.ProcDirectory
		if procDirectory == "" {
			procDirectory = constants.ProcDirectory
		}
		plan.FirmwareType, err = firmware.Detect(procDirectory)
		if err != nil {
			return nil, err
		}
	}
	if plan.FirmwareType == firmware.TypeEFI {
		// Needed by the grub installer.
		if params.LookupGUID == nil {
			return nil, errors.NewConfigurationError(errors.ReasonMissingInput,
				"partition GUID lookup for EFI firmware")
		}
		uuid, err := params.LookupGUID(root.BaseDevice, root.Number)
		if err != nil {
			return nil, errors.NewIoError("reading partition GUID",
				root.Device, err)
		}
		if uuid == "" {
			return nil, errors.NewConfigurationError(errors.ReasonMissingInput,
				"partition GUID of "+root.Device)
		}
		plan.Root.UUID = uuid
	}
	return plan, nil
}

func (p *Plan) string() string {
	kernel := "none"
	if !p.Kernel.IsZero() {
		kernel = p.Kernel.Device
	}
	return fmt.Sprintf("slot=%s root=%s kernel=%s boot=%s firmware=%s layout=%s",
		p.Slot, p.Root.Device, kernel, p.Boot.Device, p.FirmwareType,
		p.Layout)
}
