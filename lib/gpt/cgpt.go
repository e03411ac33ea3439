package gpt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
)

const cgptProgram = "cgpt"

type cgptStore struct {
	device string
	logger log.DebugLogger
	runner osutil.CommandRunner
}

func (s *cgptStore) Initialize(baseDevice string) error {
	if baseDevice == "" {
		return fmt.Errorf("no device specified")
	}
	s.device = baseDevice
	return s.run("show", "-q", baseDevice)
}

func (s *cgptStore) SetHighestPriority(partition uint) error {
	return s.run("prioritize", "-i", strconv.FormatUint(uint64(partition), 10),
		s.device)
}

func (s *cgptStore) SetTriesLeft(partition uint, tries uint) error {
	return s.run("add", "-i", strconv.FormatUint(uint64(partition), 10),
		"-T", strconv.FormatUint(uint64(clamp(tries, MaxTries)), 10),
		s.device)
}

func (s *cgptStore) SetSuccessful(partition uint, successful bool) error {
	value := "0"
	if successful {
		value = "1"
	}
	return s.run("add", "-i", strconv.FormatUint(uint64(partition), 10),
		"-S", value, s.device)
}

func (s *cgptStore) PartitionGUID(partition uint) (string, error) {
	if s.device == "" {
		return "", fmt.Errorf("store not initialised")
	}
	output, err := s.runner.Output(cgptProgram, "show", "-u", "-i",
		strconv.FormatUint(uint64(partition), 10), s.device)
	if err != nil {
		return "", err
	}
	return normaliseGUID(strings.TrimSpace(string(output)))
}

func (s *cgptStore) Close() error {
	return nil
}

func (s *cgptStore) run(args ...string) error {
	if s.device == "" {
		return fmt.Errorf("store not initialised")
	}
	code, err := s.runner.Run(cgptProgram, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%s %s exited with status: %d",
			cgptProgram, strings.Join(args, " "), code)
	}
	return nil
}
