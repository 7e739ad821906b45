package layout

import (
	"testing"

	"github.com/mj1618/ymsp/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		windows []model.Window
		want    Validity
	}{
		{
			name:   "empty space is valid",
			target: 3,
			want:   Valid(),
		},
		{
			name:    "target exceeds window count",
			target:  3,
			windows: []model.Window{win(1, 10, 0, 495), win(2, 505, 0, 495)},
			want:    Invalid("target exceeds window count and not all windows are left-aligned"),
		},
		{
			name:    "target exceeds window count with a single column",
			target:  3,
			windows: []model.Window{win(1, 10, 0, 990), win(2, 10, 400, 990)},
			want:    Invalid("count mismatch: 2/3"),
		},
		{
			name:    "too many masters",
			target:  1,
			windows: []model.Window{win(1, 10, 0, 495), win(2, 10, 400, 495), win(3, 505, 0, 495)},
			want:    Invalid("count mismatch: 2/1"),
		},
		{
			name:    "middle window",
			target:  1,
			windows: []model.Window{win(1, 10, 0, 330), win(2, 340, 0, 330), win(3, 670, 0, 330)},
			want:    Invalid("middle window detected: 3"),
		},
		{
			name:    "valid",
			target:  1,
			windows: []model.Window{win(1, 10, 0, 495), win(2, 505, 0, 495), win(3, 505, 400, 495)},
			want:    Valid(),
		},
		{
			name:    "valid with every window a master",
			target:  2,
			windows: []model.Window{win(1, 10, 0, 990), win(2, 10, 400, 990)},
			want:    Valid(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := staticManager(model.PositionLeft, 10, 7, tt.windows...)
			if got := m.Validate(tt.target); got != tt.want {
				t.Errorf("Validate(%d) = %v, want %v", tt.target, got, tt.want)
			}
			if m.Expected() != 7 {
				t.Errorf("Validate changed the expected count to %d", m.Expected())
			}
		})
	}
}

func TestValidityString(t *testing.T) {
	if got := Valid().String(); got != "valid" {
		t.Errorf("Valid().String() = %q", got)
	}
	if got := Invalid("count mismatch: 1/2").String(); got != "invalid: count mismatch: 1/2" {
		t.Errorf("Invalid().String() = %q", got)
	}
}
