// Package latexmk invokes the external latexmk compiler for PDF generation.
package latexmk

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

const defaultCommand = "latexmk"

// Runner executes latexmk in a working directory. The zero value runs
// "latexmk" in the current directory with discarded output.
type Runner struct {
	Command string // compiler executable, defaults to "latexmk"
	Dir     string // working directory for compilation and cleanup
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  zerolog.Logger
}

// CommandError reports a failed compiler invocation, surfacing the full
// command line and the underlying exit error.
type CommandError struct {
	Args []string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Available reports whether the compiler executable can be found on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.command())
	return err == nil
}

// Compile runs "latexmk -pdf <file>". There are no retries; the first
// failure is terminal.
func (r *Runner) Compile(ctx context.Context, file string) error {
	return r.run(ctx, "-pdf", file)
}

// Cleanup runs "latexmk -c" to remove auxiliary files after compilation.
func (r *Runner) Cleanup(ctx context.Context) error {
	return r.run(ctx, "-c")
}

func (r *Runner) run(ctx context.Context, args ...string) error {
	command := exec.CommandContext(ctx, r.command(), args...)
	command.Dir = r.Dir
	command.Stdout = r.stdout()
	command.Stderr = r.stderr()

	r.Logger.Info().Str("command", strings.Join(command.Args, " ")).Msg("running latexmk")

	if err := command.Run(); err != nil {
		r.Logger.Error().Err(err).Str("command", strings.Join(command.Args, " ")).Msg("latexmk failed")
		return &CommandError{Args: command.Args, Err: err}
	}
	return nil
}

func (r *Runner) command() string {
	if strings.TrimSpace(r.Command) == "" {
		return defaultCommand
	}
	return r.Command
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
