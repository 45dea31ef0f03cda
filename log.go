package rtu

import "fmt"

// InfoLogFunc and DebugLogFunc receive the package's log lines when
// set. Both are nil by default, which silences that level.
var (
	InfoLogFunc  func(f string, a ...any)
	DebugLogFunc func(f string, a ...any)
)

func log(f string, a ...any) {
	if InfoLogFunc != nil {
		InfoLogFunc(f, a...)
	}
}

func debugLog(f string, a ...any) {
	if DebugLogFunc != nil {
		DebugLogFunc(f, a...)
	}
}

// Log records every log line with an "I:" or "D:" level prefix.
type Log struct {
	Msgs []string
}

// NewLog installs a fresh Log as both log hooks and returns it.
func NewLog() *Log {
	l := new(Log)
	InfoLogFunc = func(f string, a ...any) {
		l.Msgs = append(l.Msgs, "I:"+fmt.Sprintf(f, a...))
	}
	DebugLogFunc = func(f string, a ...any) {
		l.Msgs = append(l.Msgs, "D:"+fmt.Sprintf(f, a...))
	}
	return l
}
