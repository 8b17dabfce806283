package formula

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rotisserie/eris"
)

// Builder compiles the extracted source into a single binary.
type Builder interface {
	Build(ctx context.Context, srcDir, pkg, out, ldflags string) error
}

// BuildError carries the toolchain output of a failed build.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed: %v\n%s", e.Err, e.Output)
}

func (e *BuildError) Unwrap() error { return e.Err }

// GoBuilder runs the Go toolchain.
type GoBuilder struct {
	// Go is the go command; defaults to "go" on PATH.
	Go string
	// Env is appended to the process environment.
	Env []string
}

// Build runs go build -trimpath -ldflags <ldflags> -o <out> <pkg> in srcDir.
func (b GoBuilder) Build(ctx context.Context, srcDir, pkg, out, ldflags string) error {
	goBin := b.Go
	if goBin == "" {
		goBin = "go"
	}
	cmd := exec.CommandContext(ctx, goBin, "build", "-trimpath", "-ldflags", ldflags, "-o", out, pkg)
	cmd.Dir = srcDir
	cmd.Env = append(os.Environ(), b.Env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &BuildError{Output: string(output), Err: eris.Wrapf(err, "go build %s", pkg)}
	}
	return nil
}

var _ Builder = GoBuilder{}
