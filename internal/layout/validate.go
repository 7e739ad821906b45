package layout

import "fmt"

// Validity is the result of a layout check.
type Validity struct {
	Valid  bool
	Reason string
}

func Valid() Validity                { return Validity{Valid: true} }
func Invalid(reason string) Validity { return Validity{Reason: reason} }

func (v Validity) String() string {
	if v.Valid {
		return "valid"
	}
	return "invalid: " + v.Reason
}

// Validate checks the snapshot against target. The first failing check
// supplies the reason.
func (m *Manager) Validate(target int) Validity {
	if len(m.windows) == 0 {
		return Valid()
	}

	prev := m.expected
	m.expected = target
	defer func() { m.expected = prev }()

	if target > len(m.windows) && !m.AllTouchLeftEdge() {
		return Invalid("target exceeds window count and not all windows are left-aligned")
	}
	if n := len(m.MasterWindows()); n != target {
		return Invalid(fmt.Sprintf("count mismatch: %d/%d", n, target))
	}
	for _, w := range m.windows {
		if m.IsMiddle(w) {
			return Invalid(fmt.Sprintf("middle window detected: %d", w.ID))
		}
	}
	return Valid()
}
