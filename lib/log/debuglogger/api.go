package debuglogger

import (
	"github.com/Cloud-Foundations/postinst/lib/log"
)

type Logger struct {
	level int16
	log.Logger
}

// New will create a Logger from an existing log.Logger, adding methods for
// debug logs. Debug messages will be logged or ignored depending on their
// debug level. By default, the debug level is -1, meaning all debug messages
// are dropped.
func New(logger log.Logger) *Logger {
	return &Logger{level: -1, Logger: logger}
}

// Debug will call the Print method if level is less than or equal to the
// debug level for the Logger.
func (l *Logger) Debug(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Print(v...)
	}
}

// Debugf is similar to Debug, with formatting support.
func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if l.level >= int16(level) {
		l.Printf(format, v...)
	}
}

// Debugln is similar to Debug.
func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Println(v...)
	}
}

// GetLevel gets the current debug level.
func (l *Logger) GetLevel() int16 {
	return l.level
}

// SetLevel sets the maximum debug level. A negative level will cause all debug
// messages to be dropped.
func (l *Logger) SetLevel(maxLevel int16) {
	l.level = maxLevel
}
