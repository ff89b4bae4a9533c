package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// prefixes are the four character tags written before each message.
var prefixes = map[Level]string{
	LevelTrace:   "TRAC",
	LevelDebug:   "DEBU",
	LevelInfo:    "INFO",
	LevelWarning: "WARN",
	LevelError:   "ERRO",
	LevelPanic:   "PNIC",
}

// StdoutLogger is the standard output logger for printing logs into the commandline. Messages below 'MinLevel' are
// discarded.
type StdoutLogger struct {
	MinLevel Level

	// out is where messages are written, defaults to stdout; used by tests.
	out io.Writer

	// now returns the timestamp for a message, defaults to 'time.Now'.
	now func() time.Time
}

// NewStdoutLogger returns a logger which prints messages at or above the given level.
func NewStdoutLogger(level Level) StdoutLogger {
	return StdoutLogger{MinLevel: level}
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	if level < s.MinLevel {
		return
	}

	var (
		out = s.out
		now = s.now
	)

	if out == nil {
		out = os.Stdout
	}

	if now == nil {
		now = time.Now
	}

	fmt.Fprintln(out, now().Format(time.RFC3339Nano)+" "+prefixes[level]+": "+fmt.Sprintf(msg, args...))
}
