package audit

import "fmt"

// Log is an append-only, chronologically ordered list of audit entries
type Log struct {
	entries []string
}

func NewLog() *Log {
	return &Log{
		entries: make([]string, 0, 32),
	}
}

// Record formats and appends a single entry
func (l *Log) Record(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Append adds already formatted entries in order
func (l *Log) Append(entries ...string) {
	l.entries = append(l.entries, entries...)
}

// Entries returns a copy of all entries
func (l *Log) Entries() []string {
	// Return a copy to prevent external modifications
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}
