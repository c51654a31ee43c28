package launcher

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/mclaunch/internals/instances"
)

// MaybeSpinner is a spinner that can also just log text.
// It reports install progress
type MaybeSpinner struct {
	Spin    bool
	Spinner *spinner.Spinner

	status   string
	max      int
	progress int
}

var _ instances.Observer = (*MaybeSpinner)(nil)

// Start might start the spinner
func (m *MaybeSpinner) Start() {
	if m.Spin {
		m.Spinner.Start()
	}
}

// Stop will stop the spinner
func (m *MaybeSpinner) Stop() {
	if m.Spin {
		m.Spinner.Stop()
	}
}

// Update will update the spinner text
func (m *MaybeSpinner) Update(t string) {
	m.setSuffix(" " + t)

	if !m.Spin {
		fmt.Println(t)
	}
}

// SetStatus shows a new install step
func (m *MaybeSpinner) SetStatus(status string) {
	m.status = status
	m.max = 0
	m.progress = 0
	m.Update(status)
}

// SetMax sets the number of items of the current step
func (m *MaybeSpinner) SetMax(max int) {
	m.max = max
}

// SetProgress updates the spinner with the number of finished items.
// Nothing is printed without a spinner, that would be one line per file
func (m *MaybeSpinner) SetProgress(progress int) {
	m.progress = progress
	if m.Spin && m.max > 0 {
		m.setSuffix(fmt.Sprintf(" %s (%d/%d)", m.status, m.progress, m.max))
	}
}

func (m *MaybeSpinner) setSuffix(suffix string) {
	m.Spinner.Lock()
	m.Spinner.Suffix = suffix
	m.Spinner.Unlock()
}

// NewMaybeSpinner will return a new MaybeSpinner.
// It never spins if stdout is not a terminal
func NewMaybeSpinner(spin bool) *MaybeSpinner {
	fd := os.Stdout.Fd()
	isTerminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	s := &MaybeSpinner{
		Spin:    spin && isTerminal,
		Spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond),
	}
	s.Spinner.Prefix = " "
	return s
}
