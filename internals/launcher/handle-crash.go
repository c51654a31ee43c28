package launcher

import (
	"container/ring"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/logparser"
)

// maxProblems is the number of error lines printed after a crash
const maxProblems = 12

// outputTail keeps the last lines written to it
type outputTail struct {
	mu      sync.Mutex
	lines   *ring.Ring
	partial string
}

func newOutputTail(max int) *outputTail {
	return &outputTail{lines: ring.New(max)}
}

func (t *outputTail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	parts := strings.Split(t.partial+string(p), "\n")
	// the last part has no newline (yet)
	t.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		t.lines.Value = strings.TrimRight(line, "\r")
		t.lines = t.lines.Next()
	}
	return len(p), nil
}

// Lines returns the last lines, including an unfinished one
func (t *outputTail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, t.lines.Len()+1)
	// the current element is the oldest one, unset until the ring is full
	t.lines.Do(func(v any) {
		if line, ok := v.(string); ok {
			lines = append(lines, line)
		}
	})
	if t.partial != "" {
		lines = append(lines, t.partial)
	}
	return lines
}

// crashError prints some debug info and the errors found in the game output
func (l *Launcher) crashError(exitCode int, err error, tail *outputTail) error {
	fmt.Println("--------------------")
	fmt.Println("Minecraft crashed :(")
	fmt.Println("Here is some debug info")
	fmt.Println("[system]")
	fmt.Println("  platform: " + l.Instance.Platform.String())
	fmt.Printf("  CPUs: %d\n", runtime.NumCPU())
	fmt.Println("[launch]")
	fmt.Println("  minecraft version: " + l.Version)
	if man := l.LaunchManifest; man != nil {
		fmt.Println("  main class: " + man.MainClass)
		if man.JavaVersion != nil {
			fmt.Println("  java component: " + man.JavaVersion.Component)
		}
	}
	if l.java != "" {
		fmt.Println("  java path: " + l.java)
	}
	fmt.Printf("  exit code: %d\n", exitCode)

	problems := logparser.Problems(tail.Lines())
	if len(problems) > maxProblems {
		problems = problems[len(problems)-maxProblems:]
	}
	if len(problems) != 0 {
		fmt.Println("[errors]")
		for _, p := range problems {
			fmt.Println("  " + gchalk.Red(p.String()))
		}
	}

	return &commands.CliError{
		Text: fmt.Sprintf("Minecraft crashed (%s)", err),
		Err:  err,
		Suggestions: []string{
			"Check the errors above for the cause of the crash",
			"Run \"mclaunch install " + l.Version + " --force\" to repair the installation",
		},
	}
}
