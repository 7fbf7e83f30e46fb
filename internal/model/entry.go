package model

import (
	"strings"
	"time"
)

// Entry is one completed calculation, as listed in the history panel and
// written by the export package.
type Entry struct {
	Timestamp  time.Time
	Expression string // left side, e.g. "1 + 2"
	Result     string // right side, e.g. "3"
}

// EntryFromLine builds an Entry from an engine history line of the form
// "<expression> = <result>". Lines without the separator keep the whole
// text as the expression.
func EntryFromLine(ts time.Time, line string) Entry {
	expr, res, found := strings.Cut(line, " = ")
	if !found {
		return Entry{Timestamp: ts, Expression: line}
	}
	return Entry{Timestamp: ts, Expression: expr, Result: res}
}

// Line reconstructs the display form of the entry.
func (e Entry) Line() string {
	if e.Result == "" {
		return e.Expression
	}
	return e.Expression + " = " + e.Result
}
