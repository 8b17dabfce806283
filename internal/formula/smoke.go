package formula

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// SmokeTimeout bounds a single smoke run.
const SmokeTimeout = 30 * time.Second

// SmokeError describes a failed smoke test.
type SmokeError struct {
	ExitCode int
	Output   string
	Reason   string
	Err      error
}

func (e *SmokeError) Error() string {
	return fmt.Sprintf("smoke test failed: %s (exit code %d)\n%s", e.Reason, e.ExitCode, e.Output)
}

func (e *SmokeError) Unwrap() error { return e.Err }

// Smoke runs bin once with t.Args and no input. It passes when the exit code
// equals t.ExpectExit and the combined output contains t.ExpectOutput.
func Smoke(ctx context.Context, bin string, t Test) error {
	ctx, cancel := context.WithTimeout(ctx, SmokeTimeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, t.Args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return &SmokeError{ExitCode: -1, Output: out.String(), Reason: "could not run " + bin, Err: err}
		}
		code = exitErr.ExitCode()
	}

	if code != t.ExpectExit {
		return &SmokeError{
			ExitCode: code,
			Output:   out.String(),
			Reason:   fmt.Sprintf("expected exit code %d", t.ExpectExit),
		}
	}
	if !strings.Contains(out.String(), t.ExpectOutput) {
		return &SmokeError{
			ExitCode: code,
			Output:   out.String(),
			Reason:   fmt.Sprintf("output does not contain %q", t.ExpectOutput),
		}
	}
	return nil
}
