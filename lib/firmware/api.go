/*
Package firmware classifies the boot firmware of the running machine and
reports its serial number.

The firmware type is derived from markers which the boot firmware places on
the kernel command line. The markers are checked in priority order:
cros_secure, cros_legacy and then cros_efi. On ARM machines cros_legacy means
U-Boot.
*/
package firmware

const (
	TypeUnknown Type = iota
	TypeSecure
	TypeLegacy
	TypeEFI
	TypeUBoot
)

type Type uint

// Detect reads <procDirectory>/cmdline and classifies it for the architecture
// of the running programme.
func Detect(procDirectory string) (Type, error) {
	return detect(procDirectory)
}

// ExtractSerialNumber will extract a valid product serial number from a raw
// serial number. If the input does not contain a valid serial number, the empty
// string is returned.
func ExtractSerialNumber(input string) string {
	return extractSerialNumber(input)
}

// ParseKernelCmdline classifies a kernel command line. The arch parameter
// uses runtime.GOARCH values. If no marker is found an error satisfying
// errors.IsDetectionError is returned.
func ParseKernelCmdline(cmdline, arch string) (Type, error) {
	return parseKernelCmdline(cmdline, arch)
}

// ReadSystemSerial will read the product serial number and if not valid/found
// will fall back to reading the board serial number. If there is no valid
// serial number found, the empty string is returned.
func ReadSystemSerial() string {
	return readSystemSerial(dmiDirectory)
}

// ReadSystemSerialFromDirectory is similar to ReadSystemSerial, except the
// directory containing the DMI id files is specified.
func ReadSystemSerialFromDirectory(dirname string) string {
	return readSystemSerial(dirname)
}

// Set implements the flag.Value interface. The empty string and "auto" select
// TypeUnknown, which means the type should be detected.
func (t *Type) Set(value string) error {
	return t.set(value)
}

func (t Type) String() string {
	return t.string()
}
