package executil

import (
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "exit 3", err: RunCMD("/bin/sh", "-c", "exit 3"), want: 3},
		{name: "exit 1", err: RunCMD("/bin/sh", "-c", "exit 1"), want: 1},
		{name: "missing binary", err: RunCMD("/nonexistent/definitely-not-a-binary"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestRunCMDSuccess(t *testing.T) {
	if err := RunCMD("/bin/sh", "-c", "exit 0"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDryRunCMDNeverExecutes(t *testing.T) {
	// A dry run of a missing binary must not fail.
	if err := DryRunCMD("/nonexistent/definitely-not-a-binary", "--flag"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOutput(t *testing.T) {
	out, err := Output("/bin/sh", "-c", "echo '  hello  '")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello" {
		t.Errorf("output = %q; want %q", out, "hello")
	}
}

func TestShellQuoteArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "plain", args: []string{"build", "-t", "ros1-ml"}, want: "build -t ros1-ml"},
		{name: "spaces", args: []string{"a b"}, want: "'a b'"},
		{name: "empty arg", args: []string{""}, want: "''"},
		{name: "single quote", args: []string{"it's"}, want: `'it'\''s'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shellQuoteArgs(tt.args); got != tt.want {
				t.Errorf("shellQuoteArgs(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}
