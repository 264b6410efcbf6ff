package sdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// commandOutput is the fully captured result of one subprocess run.
type commandOutput struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// runCommand starts name with args, drains stdout and stderr to
// completion, and only then waits on the process. A nonzero exit is not
// an error here; callers inspect exitCode so they can treat "ran but
// found nothing" differently from "could not run".
func runCommand(ctx context.Context, name string, args ...string) (commandOutput, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return commandOutput{}, fmt.Errorf("stdout pipe for %s: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return commandOutput{}, fmt.Errorf("stderr pipe for %s: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return commandOutput{}, fmt.Errorf("failed to start %s: %w", name, err)
	}

	// Both streams must be drained before Wait, or the child can stall
	// on a full pipe buffer.
	var out commandOutput
	g := new(errgroup.Group)
	g.Go(func() error {
		b, err := io.ReadAll(stdout)
		out.stdout = b
		return err
	})
	g.Go(func() error {
		b, err := io.ReadAll(stderr)
		out.stderr = b
		return err
	})
	readErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.exitCode = exitErr.ExitCode()
		} else {
			return out, fmt.Errorf("failed to run %s: %w", name, err)
		}
	}
	if readErr != nil {
		return out, fmt.Errorf("failed to read %s output: %w", name, readErr)
	}
	return out, nil
}
