package version

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Version
		expectErr bool
	}{
		{
			name:  "Valid version",
			input: "24.0.7",
			want:  Version{Major: 24, Minor: 0, Patch: 7},
		},
		{
			name:  "Leading zero segment",
			input: "18.09.1",
			want:  Version{Major: 18, Minor: 9, Patch: 1},
		},
		{
			name:      "Missing patch",
			input:     "1.2",
			expectErr: true,
		},
		{
			name:      "Too many segments",
			input:     "1.2.3.4",
			expectErr: true,
		},
		{
			name:      "Non-numeric parts",
			input:     "a.b.c",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error but got none for input %q", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error for input %q: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("expected %+v, got %+v", tt.want, got)
				}
			}
		})
	}
}

func TestString(t *testing.T) {
	v := Version{Major: 18, Minor: 9, Patch: 0}
	got := v.String()
	want := "18.9.0"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLessThan(t *testing.T) {
	tests := []struct {
		a, b Version
		want bool
	}{
		{Version{17, 12, 1}, Version{18, 9, 0}, true},
		{Version{18, 6, 3}, Version{18, 9, 0}, true},
		{Version{18, 9, 0}, Version{18, 9, 1}, true},
		{Version{24, 0, 7}, Version{18, 9, 0}, false},
		{Version{18, 9, 0}, Version{18, 9, 0}, false},
	}

	for _, tt := range tests {
		got := tt.a.LessThan(tt.b)
		if got != tt.want {
			t.Errorf("LessThan(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
