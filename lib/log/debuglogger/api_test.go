package debuglogger

import (
	"bytes"
	stdlog "log"
	"testing"
)

func TestLevels(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := New(stdlog.New(buffer, "", 0))
	logger.Debugln(0, "dropped")
	if buffer.Len() != 0 {
		t.Fatalf("message logged at default level: %q", buffer.String())
	}
	logger.SetLevel(1)
	logger.Debugf(1, "kept %d\n", 1)
	logger.Debugf(2, "dropped %d\n", 2)
	if got := buffer.String(); got != "kept 1\n" {
		t.Fatalf("got: %q", got)
	}
	if logger.GetLevel() != 1 {
		t.Fatalf("level: %d != 1", logger.GetLevel())
	}
}
