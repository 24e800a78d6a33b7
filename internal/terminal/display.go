package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ohare93/keyprompt/internal/prompt"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// Display draws transient panels inline on the terminal. Surfaces are
// re-used by name and re-render in place; closing one erases it from the
// screen.
type Display struct {
	out      io.Writer
	surfaces map[string]*surface
}

// NewDisplay creates a Display writing to stderr.
func NewDisplay() *Display {
	return NewDisplayTo(os.Stderr)
}

// NewDisplayTo creates a Display writing to w.
func NewDisplayTo(w io.Writer) *Display {
	return &Display{out: w, surfaces: make(map[string]*surface)}
}

// Surface returns the open surface with the given name, creating it on
// first use.
func (d *Display) Surface(name string) (prompt.Surface, error) {
	if s, ok := d.surfaces[name]; ok {
		return s, nil
	}
	s := &surface{id: uuid.New().String(), name: name, display: d}
	d.surfaces[name] = s
	return s, nil
}

// Capture snapshots the set of open surfaces. Restoring the snapshot
// closes every surface opened after it, winding the screen back to how
// it looked when the snapshot was taken.
func (d *Display) Capture() (prompt.Context, error) {
	open := make(map[string]bool, len(d.surfaces))
	for name := range d.surfaces {
		open[name] = true
	}
	return &context{display: d, open: open}, nil
}

type context struct {
	display  *Display
	open     map[string]bool
	restored bool
}

func (c *context) Restore() error {
	if c.restored {
		return nil
	}
	c.restored = true
	for name, s := range c.display.surfaces {
		if !c.open[name] {
			if err := s.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

type surface struct {
	id      string
	name    string
	display *Display
	lines   int
	closed  bool
}

// ID returns the surface's unique identity, distinct from its re-usable
// name.
func (s *surface) ID() string {
	return s.id
}

// Show replaces the surface's previous rendering in place.
func (s *surface) Show(text string) error {
	if s.closed {
		return fmt.Errorf("surface %s (%s) is closed", s.name, s.id)
	}
	s.erase()
	panel := panelStyle.Render(text)
	fmt.Fprint(s.display.out, panel+"\n")
	s.lines = strings.Count(panel, "\n") + 1
	return nil
}

// Close erases the surface from the screen and forgets it. Closing twice
// is harmless.
func (s *surface) Close() error {
	if s.closed {
		return nil
	}
	s.erase()
	s.closed = true
	delete(s.display.surfaces, s.name)
	return nil
}

func (s *surface) erase() {
	if s.lines == 0 {
		return
	}
	// Cursor up over the panel, then clear to end of screen.
	fmt.Fprintf(s.display.out, "\033[%dA\033[J", s.lines)
	s.lines = 0
}
