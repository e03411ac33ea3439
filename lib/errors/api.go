/*
Package errors defines the error types reported by postinst.

Each type wraps an underlying cause which may be recovered with the standard
library errors.Unwrap, and each type may be matched with errors.As.
*/
package errors

// ConfigurationError reports a problem with the requested install, detected
// before anything was changed. Reason is one of the Reason* constants.
type ConfigurationError struct {
	Reason string
	Detail string
	Err    error
}

const (
	ReasonDetection     = "cannot detect firmware type"
	ReasonInvalidTarget = "invalid target partition"
	ReasonMissingInput  = "missing input"
)

// IoError reports a failure to read, write, copy, mount or unmount.
type IoError struct {
	Op   string
	Path string
	Err  error
}

// TemplateFormatError reports a bootloader template that does not contain the
// expected entry.
type TemplateFormatError struct {
	Path   string
	Reason string
}

// TransactionError reports a failed partition table attribute update. Step
// names the update which failed; later updates were not attempted.
type TransactionError struct {
	Step      string
	Device    string
	Partition uint
	Err       error
}

// ExternalToolError reports an external programme which failed or exited
// with a non-zero status.
type ExternalToolError struct {
	Command  string
	ExitCode int
	Err      error
}

// NewDetectionError returns a ConfigurationError for an unknown firmware type.
func NewDetectionError(detail string, err error) *ConfigurationError {
	return &ConfigurationError{Reason: ReasonDetection, Detail: detail, Err: err}
}

// NewInvalidTargetError returns a ConfigurationError for a target partition
// which is not part of any slot.
func NewInvalidTargetError(detail string) *ConfigurationError {
	return &ConfigurationError{Reason: ReasonInvalidTarget, Detail: detail}
}

func NewConfigurationError(reason, detail string) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Detail: detail}
}

func NewIoError(op, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Err: err}
}

func NewTemplateFormatError(path, reason string) *TemplateFormatError {
	return &TemplateFormatError{Path: path, Reason: reason}
}

func NewTransactionError(step, device string, partition uint,
	err error) *TransactionError {
	return &TransactionError{
		Step:      step,
		Device:    device,
		Partition: partition,
		Err:       err,
	}
}

func NewExternalToolError(command string, exitCode int,
	err error) *ExternalToolError {
	return &ExternalToolError{Command: command, ExitCode: exitCode, Err: err}
}

// IsDetectionError returns true if err is or wraps a ConfigurationError for
// an unknown firmware type.
func IsDetectionError(err error) bool {
	return hasReason(err, ReasonDetection)
}

// IsInvalidTargetError returns true if err is or wraps a ConfigurationError
// for an invalid target partition.
func IsInvalidTargetError(err error) bool {
	return hasReason(err, ReasonInvalidTarget)
}
