// internal/executil/executil.go
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// RunCMD executes the given command with inherited stdout/stderr.
// The child blocks the caller until it exits.
func RunCMD(name string, args ...string) error {
	return runCore(context.Background(), false, name, args...)
}

// DryRunCMD logs the command that would be run without executing.
func DryRunCMD(name string, args ...string) error {
	return runCore(context.Background(), true, name, args...)
}

// RunCtx executes with a context (for timeouts/cancellation).
func RunCtx(ctx context.Context, name string, args ...string) error {
	return runCore(ctx, false, name, args...)
}

// Output runs the command and returns its trimmed stdout. Stderr is
// discarded; callers treat any failure as "no answer".
func Output(name string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &buf
	cmd.Env = os.Environ()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run command: %s %s: %w", name, shellQuoteArgs(args), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// ExitCode maps an error from RunCMD/RunCtx back to a process exit code:
// nil is 0, a child that exited nonzero yields that code, anything else
// (binary missing, cancellation) yields 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}

// ----------------------------------------------------------------

func runCore(ctx context.Context, dry bool, name string, args ...string) error {
	fullCmd := name + " " + shellQuoteArgs(args)

	if dry {
		fmt.Printf("[DRY RUN] %s\n", fullCmd)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	fmt.Printf("Running: %s\n", fullCmd)
	if err := cmd.Run(); err != nil {
		// include exit status if available
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
				return fmt.Errorf("command failed (exit=%d): %s: %w", status.ExitStatus(), fullCmd, err)
			}
		}
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("command canceled: %s", fullCmd)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("command timed out: %s", fullCmd)
		}
		return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
	}
	return nil
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
