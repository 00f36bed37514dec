package constants

import "testing"

func TestKeyFromString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"esc", "Back"},
		{"backspace", "Back"},
		{"q", "Quit"},
		{"ctrl+c", "Quit"},
		{"k", "Up"},
		{"down", "Down"},
		{"enter", "Select"},
		{"x", "Unassigned"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := KeyFromString(tt.in).GetName(); got != tt.want {
				t.Errorf("KeyFromString(%q).GetName() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if got := Key(99).GetName(); got != "Unknown" {
		t.Errorf("Key(99).GetName() = %q, want Unknown", got)
	}
}
