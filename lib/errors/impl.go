package errors

import (
	stderrors "errors"
	"fmt"
)

func hasReason(err error, reason string) bool {
	var configErr *ConfigurationError
	if stderrors.As(err, &configErr) {
		return configErr.Reason == reason
	}
	return false
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("error %s: %s: %s", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

func (e *TemplateFormatError) Error() string {
	return "bad template: " + e.Path + ": " + e.Reason
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("error in %s for partition %d on %s: %s",
		e.Step, e.Partition, e.Device, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

func (e *ExternalToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error running: %s: %s", e.Command, e.Err)
	}
	return fmt.Sprintf("%s exited with status: %d", e.Command, e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }
