package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mj1618/ymsp/internal/layout"
	"github.com/mj1618/ymsp/internal/model"
)

// Status is the read-only report of the focused space.
type Status struct {
	Display      int                  `yaml:"display"          json:"display"`
	Space        int                  `yaml:"space"            json:"space"`
	SpaceID      int                  `yaml:"space_id"         json:"space_id"`
	Position     model.MasterPosition `yaml:"position"         json:"position"`
	Count        int                  `yaml:"count"            json:"count"`
	DividingLine float64              `yaml:"dividing_line"    json:"dividing_line"`
	Valid        bool                 `yaml:"valid"            json:"valid"`
	Reason       string               `yaml:"reason,omitempty" json:"reason,omitempty"`
	Windows      []WindowStatus       `yaml:"windows"          json:"windows"`
}

// WindowStatus is one managed window and the region it is classified into.
type WindowStatus struct {
	ID      int         `yaml:"id"                json:"id"`
	App     string      `yaml:"app"               json:"app"`
	Title   string      `yaml:"title,omitempty"   json:"title,omitempty"`
	Role    layout.Role `yaml:"role"              json:"role"`
	Frame   model.Frame `yaml:"frame"             json:"frame"`
	Focused bool        `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// Status reports the focused space without taking the lock or writing
// anything.
func (r *Runner) Status(ctx context.Context) (Status, error) {
	svc, err := r.provider(nil)
	if err != nil {
		return Status{}, err
	}
	m, _, stored, err := r.snapshot(ctx, svc)
	if err != nil {
		return Status{}, err
	}
	count := m.Reconcile(stored)
	return newStatus(m, count), nil
}

func newStatus(m *layout.Manager, count int) Status {
	validity := m.Validate(count)
	st := Status{
		Display:      m.Display().Index,
		Space:        m.Space().Index,
		SpaceID:      m.Space().ID,
		Position:     m.Position(),
		Count:        count,
		DividingLine: m.DividingLineX(),
		Valid:        validity.Valid,
		Reason:       validity.Reason,
		Windows:      []WindowStatus{},
	}
	for _, w := range m.Windows() {
		st.Windows = append(st.Windows, WindowStatus{
			ID:      w.ID,
			App:     w.App,
			Title:   w.Title,
			Role:    m.RoleOf(w),
			Frame:   w.Frame,
			Focused: w.HasFocus,
		})
	}
	return st
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)

	roleStyles = map[layout.Role]lipgloss.Style{
		layout.RoleMaster: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		layout.RoleStack:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		layout.RoleMiddle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// Text renders the report for a terminal.
func (s Status) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, headingStyle.Render(fmt.Sprintf("display %d, space %d (id %d)", s.Display, s.Space, s.SpaceID)))
	fmt.Fprintf(&b, "master %s, %d master windows, dividing line at x=%g\n", s.Position, s.Count, s.DividingLine)
	if s.Valid {
		fmt.Fprintln(&b, validStyle.Render("layout valid"))
	} else {
		fmt.Fprintln(&b, invalidStyle.Render("layout invalid: "+s.Reason))
	}
	for _, w := range s.Windows {
		marker := " "
		if w.Focused {
			marker = "*"
		}
		role := roleStyles[w.Role].Render(fmt.Sprintf("%-6s", w.Role))
		frame := dimStyle.Render(fmt.Sprintf("%gx%g at %g,%g", w.Frame.W, w.Frame.H, w.Frame.X, w.Frame.Y))
		fmt.Fprintf(&b, "%s %s %-8d %s %s\n", marker, role, w.ID, w.App, frame)
	}
	return b.String()
}

// Windows lists the managed windows of the focused space, or every window
// yabai reports when all is set. Like Status it is read-only.
func (r *Runner) Windows(ctx context.Context, all bool) ([]model.Window, error) {
	svc, err := r.provider(nil)
	if err != nil {
		return nil, err
	}
	if all {
		return svc.Windows(ctx)
	}
	m := layout.New(svc, r.cfg.MasterPosition, r.logger)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m.Windows(), nil
}
