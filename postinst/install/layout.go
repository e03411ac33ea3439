package install

import (
	"fmt"

	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/google/uuid"
)

var layouts = []Layout{LayoutRoot, LayoutKernelRoot}

func parseLayout(name string) (Layout, error) {
	for _, layout := range layouts {
		if layout.Name == name {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("unknown layout: %s", name)
}

func (l Layout) slotForNumber(number uint) (Slot, bool) {
	switch number {
	case l.SlotARoot:
		return SlotA, true
	case l.SlotBRoot:
		return SlotB, true
	}
	return "", false
}

func (l Layout) dryRunEntries() []gpt.Entry {
	if l.Name == "" {
		l = LayoutRoot
	}
	var entries []gpt.Entry
	add := func(number uint, typeGUID string) {
		guid := uuid.NewSHA1(uuid.NameSpaceOID,
			[]byte(fmt.Sprintf("postinst-dry-run-%d", number)))
		entries = append(entries, gpt.Entry{
			Number:   number,
			TypeGUID: typeGUID,
			GUID:     guid.String(),
		})
	}
	for _, number := range []uint{l.SlotARoot, l.SlotBRoot} {
		add(number, gpt.ChromeOSRootType)
		if l.KernelOffset > 0 {
			add(number-l.KernelOffset, gpt.ChromeOSKernelType)
		}
	}
	return entries
}
