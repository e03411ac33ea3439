/*
Package format provides convenience functions for formatting.
*/
package format

import (
	"time"
)

// Duration is similar to the time.Duration.String method from the standard
// library but is more readable and shows only 3 digits of precision when
// duration is less than 1 minute.
func Duration(duration time.Duration) string {
	return formatDuration(duration)
}
