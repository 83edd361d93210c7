package logger

import (
	"log"
	"os"
)

var std = log.New(os.Stdout, "", log.LstdFlags)

// Init initializes the basic process logger. Kept separate from the
// structured logger so early boot messages work before config is loaded.
func Init() {
	std.SetFlags(log.LstdFlags | log.Lmsgprefix)
}

// Info logs an informational message (printf style)
func Info(format string, args ...interface{}) {
	std.Printf("[INFO] "+format, args...)
}

// Warn logs a warning message (printf style)
func Warn(format string, args ...interface{}) {
	std.Printf("[WARN] "+format, args...)
}

// Error logs an error message (printf style)
func Error(format string, args ...interface{}) {
	std.Printf("[ERROR] "+format, args...)
}
