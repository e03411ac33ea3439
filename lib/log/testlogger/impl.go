package testlogger

import (
	"fmt"
	"strings"
)

func plainSprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprint(v...), "\n")
}

func plainSprintf(format string, v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
}

func newTestlogger(logger TestLogger) *Logger {
	return &Logger{
		logger:  logger,
		sprint:  plainSprint,
		sprintf: plainSprintf,
	}
}

func (l *Logger) log(message string) {
	l.mutex.Lock()
	l.messages = append(l.messages, message)
	l.mutex.Unlock()
	l.logger.Log(message)
}
