// Package teatest runs bubbletea models without a terminal. Messages go
// through Update one at a time and every Cmd is executed in place, so the
// week browser's service calls have finished before the next assertion.
package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// maxSteps bounds how many messages one Send may produce.
const maxSteps = 100

// cmdTimeout fails a test whose Cmd never returns. Browser Cmds are service
// calls against an in-memory database.
const cmdTimeout = 2 * time.Second

// Driver feeds messages to a model and records what happened.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once the model returns tea.Quit. The real runtime
	// would stop here, so later Sends are ignored.
	Quitting bool

	// Msgs holds every message delivered to Update, in order.
	Msgs []tea.Msg
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg and runs every Cmd that follows from it.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.run(d.deliver(msg))
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyLeft})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRight})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) View() string {
	return d.Model.View()
}

// RequireViewContains fails the test unless every want appears in the view.
func (d *Driver) RequireViewContains(want ...string) {
	d.T.Helper()
	view := d.View()
	for _, w := range want {
		require.Truef(d.T, strings.Contains(view, w), "view does not contain %q:\n%s", w, view)
	}
}

// RequireViewNotContains fails the test if any of unwanted appears in the view.
func (d *Driver) RequireViewNotContains(unwanted ...string) {
	d.T.Helper()
	view := d.View()
	for _, u := range unwanted {
		require.Falsef(d.T, strings.Contains(view, u), "view unexpectedly contains %q:\n%s", u, view)
	}
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Msgs = append(d.Msgs, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// run executes cmds breadth first. Batches are flattened; a QuitMsg stops
// everything still pending.
func (d *Driver) run(first tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{first}
	for steps := 0; len(pending) > 0; steps++ {
		require.Lessf(d.T, steps, maxSteps, "model kept producing messages after %d steps", maxSteps)
		cmd := pending[0]
		pending = pending[1:]
		if cmd == nil {
			continue
		}

		switch msg := d.exec(cmd).(type) {
		case nil:
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case tea.QuitMsg:
			d.Quitting = true
			d.Msgs = append(d.Msgs, msg)
			return
		default:
			pending = append(pending, d.deliver(msg))
		}
	}
}

func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	d.T.Helper()
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		require.FailNowf(d.T, "cmd did not return", "waited %s", cmdTimeout)
		return nil
	}
}
