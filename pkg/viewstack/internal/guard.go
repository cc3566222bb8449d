package internal

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Guard runs fn and converts a panic into an error log entry. It reports
// whether fn returned normally. Caller-supplied callbacks and view hooks
// always run behind Guard so a fault never unwinds into engine bookkeeping.
func Guard(logger *slog.Logger, op string, fn func(), attrs ...any) (ok bool) {
	if fn == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			args := append([]any{"op", op, "panic", fmt.Sprint(r), "stack", string(debug.Stack())}, attrs...)
			LoggerOr(logger).Error("Callback fault recovered.", args...)
		}
	}()
	fn()
	return true
}
