package latexmk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestAvailableFalseForMissingExecutable(t *testing.T) {
	t.Parallel()

	runner := &Runner{Command: "definitely-not-a-latexmk-binary", Logger: zerolog.Nop()}
	if runner.Available() {
		t.Fatalf("expected missing executable to be unavailable")
	}
}

func TestCompileSurfacesCommandError(t *testing.T) {
	t.Parallel()

	runner := &Runner{Command: "definitely-not-a-latexmk-binary", Logger: zerolog.Nop()}
	err := runner.Compile(context.Background(), "Zeiterfassung_2001-01_Anfang.tex")
	if err == nil {
		t.Fatalf("expected error")
	}

	var commandErr *CommandError
	if !errors.As(err, &commandErr) {
		t.Fatalf("expected CommandError, got %T", err)
	}
	if len(commandErr.Args) == 0 || commandErr.Args[len(commandErr.Args)-1] != "Zeiterfassung_2001-01_Anfang.tex" {
		t.Fatalf("expected command args to carry the input file, got %v", commandErr.Args)
	}
	if !strings.Contains(commandErr.Error(), "-pdf") {
		t.Fatalf("expected error message to surface the command line: %v", commandErr)
	}
}

func TestCleanupSurfacesCommandError(t *testing.T) {
	t.Parallel()

	runner := &Runner{Command: "definitely-not-a-latexmk-binary", Logger: zerolog.Nop()}
	err := runner.Cleanup(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	var commandErr *CommandError
	if !errors.As(err, &commandErr) {
		t.Fatalf("expected CommandError, got %T", err)
	}
}

func TestDefaultCommandName(t *testing.T) {
	t.Parallel()

	runner := &Runner{}
	if got := runner.command(); got != "latexmk" {
		t.Fatalf("expected default command latexmk, got %s", got)
	}
	runner.Command = " custom "
	if got := runner.command(); got != " custom " {
		t.Fatalf("expected explicit command to win, got %q", got)
	}
}
