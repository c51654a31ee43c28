// Package logparser parses the console output of the game
package logparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const timeFormat = "15:04:05"

// [12:00:01] [Render thread/INFO]: msg and [12:00:01] [main/INFO] [FML]: msg
var lineRegex = regexp.MustCompile(`^\[(\d+:\d+:\d+)\] \[([^\]]+)/([A-Z]+)\](?: \[([^\]]+)\])?: (.*)$`)

// LogLine is a parsed log line
type LogLine struct {
	Time    time.Time
	Thread  string
	Level   string
	Tag     string
	Message string
	// Garbage is set for lines that are not in the log format (stack traces for example)
	Garbage bool
}

func (l LogLine) String() string {
	if l.Garbage {
		return l.Message
	}
	if l.Tag == "" {
		return fmt.Sprintf("[%s] [%s/%s]: %s", l.Time.Format(timeFormat), l.Thread, l.Level, l.Message)
	}
	return fmt.Sprintf(
		"[%s] [%s/%s] [%s]: %s",
		l.Time.Format(timeFormat),
		l.Thread,
		l.Level,
		l.Tag,
		l.Message,
	)
}

// IsProblem returns true for errors and lines that belong to a stack trace
func (l LogLine) IsProblem() bool {
	if !l.Garbage {
		return l.Level == "ERROR" || l.Level == "FATAL"
	}
	msg := strings.TrimSpace(l.Message)
	return strings.HasPrefix(msg, "at ") ||
		strings.HasPrefix(msg, "Caused by:") ||
		strings.HasPrefix(msg, "Exception in thread") ||
		strings.Contains(msg, "Exception: ") ||
		strings.HasPrefix(msg, "Error: ")
}

// ParseLine parses a string into a `LogLine`
func ParseLine(input string) *LogLine {
	input = strings.TrimRight(input, "\r\n")

	found := lineRegex.FindStringSubmatch(input)
	if len(found) == 0 {
		return &LogLine{Garbage: true, Message: input}
	}
	parsedTime, err := time.Parse(timeFormat, found[1])
	if err != nil {
		return &LogLine{Garbage: true, Message: input}
	}

	return &LogLine{
		Time:    parsedTime,
		Thread:  found[2],
		Level:   found[3],
		Tag:     found[4],
		Message: found[5],
	}
}

// Problems returns the lines that are errors or part of a stack trace
func Problems(lines []string) []*LogLine {
	problems := make([]*LogLine, 0)
	for _, raw := range lines {
		if line := ParseLine(raw); line.IsProblem() {
			problems = append(problems, line)
		}
	}
	return problems
}
