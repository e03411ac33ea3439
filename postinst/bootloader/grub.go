package bootloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/lib/linescan"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const (
	grubConfig  = "grub.cfg"
	partUUID    = "PARTUUID"
	rootArgName = "root="
)

type grubInstaller struct{}

func (grubInstaller) Install(plan *install.Plan,
	logger log.DebugLogger) error {
	if err := checkMountPoints(plan); err != nil {
		return err
	}
	if plan.Root.UUID == "" {
		return errors.NewConfigurationError(errors.ReasonMissingInput,
			"no unique GUID for root partition "+plan.Root.Device)
	}
	slot := string(plan.Slot)
	grubMarker := "grubpart" + slot
	linuxMarker := "linuxpart" + slot
	templateFile := filepath.Join(plan.Root.MountPoint, "boot", "efi", "boot",
		grubConfig)
	targetFile := filepath.Join(plan.Boot.MountPoint, "efi", "boot",
		grubConfig)
	template, err := os.ReadFile(templateFile)
	if err != nil {
		return errors.NewIoError("reading", templateFile, err)
	}
	templateLines := linescan.Split(string(template))
	index := linescan.FindFirst(templateLines, grubMarker, linuxMarker)
	if index < 0 {
		return errors.NewTemplateFormatError(templateFile,
			"no line containing "+grubMarker+" and "+linuxMarker)
	}
	entry, ok := replaceRootArg(templateLines[index].Text,
		partUUID+"="+plan.Root.UUID)
	if !ok {
		return errors.NewTemplateFormatError(templateFile,
			"no "+rootArgName+" argument for slot "+slot)
	}
	fi, err := os.Stat(targetFile)
	if err != nil {
		return errors.NewIoError("reading", targetFile, err)
	}
	target, err := os.ReadFile(targetFile)
	if err != nil {
		return errors.NewIoError("reading", targetFile, err)
	}
	targetLines := linescan.Split(string(target))
	var numReplaced int
	for _, lineIndex := range linescan.FindAll(targetLines, grubMarker) {
		if !linescan.Contains(targetLines[lineIndex].Text, partUUID) {
			continue
		}
		targetLines[lineIndex].Text = entry
		numReplaced++
	}
	if numReplaced < 1 {
		logger.Printf("warning: no %s entry with %s in %s, leaving unchanged\n",
			grubMarker, partUUID, targetFile)
		return nil
	}
	err = fsutil.WriteFile(targetFile, []byte(linescan.Join(targetLines)),
		fi.Mode().Perm())
	if err != nil {
		return errors.NewIoError("writing", targetFile, err)
	}
	logger.Printf("updated %d %s entries in %s\n",
		numReplaced, grubMarker, targetFile)
	return nil
}

func (grubInstaller) NeedsBootPartition() bool {
	return true
}

func (grubInstaller) String() string {
	return "grub"
}

// replaceRootArg replaces the value of the first root= argument in line. The
// rest of the line is unchanged.
func replaceRootArg(line, value string) (string, bool) {
	offset := 0
	for {
		index := strings.Index(line[offset:], rootArgName)
		if index < 0 {
			return "", false
		}
		start := offset + index
		if start == 0 || line[start-1] == ' ' || line[start-1] == '\t' {
			valueStart := start + len(rootArgName)
			valueEnd := valueStart
			for valueEnd < len(line) &&
				line[valueEnd] != ' ' && line[valueEnd] != '\t' {
				valueEnd++
			}
			return line[:valueStart] + value + line[valueEnd:], true
		}
		offset = start + len(rootArgName)
	}
}
