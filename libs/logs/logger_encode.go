package logs

import (
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
)

// StacktraceField captures the current goroutine stack as a single field.
func StacktraceField() zap.Field {
	b := debug.Stack()
	result := ""
	for k, line := range strings.Split(string(b), "\n") {
		if k == 0 {
			result += line
		} else {
			result += "\n\t" + line
		}
	}
	return zap.Any("stacktrace", result)
}
