package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// PagerOptions controls paging of one digest.
type PagerOptions struct {
	NoPager bool // --no-pager
}

// usePager is false for --no-pager, DIGEST_NO_PAGER, or a non-terminal stdout.
func usePager(opts PagerOptions) bool {
	if opts.NoPager || os.Getenv("DIGEST_NO_PAGER") != "" {
		return false
	}
	return IsTerminal()
}

// pagerCommand is DIGEST_PAGER, then PAGER, then less.
func pagerCommand() string {
	for _, env := range []string{"DIGEST_PAGER", "PAGER"} {
		if p := os.Getenv(env); p != "" {
			return p
		}
	}
	return "less"
}

// screenRows is the terminal height, or 0 off a terminal.
func screenRows() int {
	if !IsTerminal() {
		return 0
	}
	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return rows
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// ToPager writes a digest to out, or through the pager when stdout is a
// terminal and the digest is taller than the screen.
func ToPager(out io.Writer, digest string, opts PagerOptions) error {
	argv := strings.Fields(pagerCommand())
	rows := screenRows()
	if !usePager(opts) || len(argv) == 0 || (rows > 0 && lineCount(digest) < rows) {
		_, err := fmt.Fprint(out, digest)
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 - user-configured pager
	cmd.Stdin = strings.NewReader(digest)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if os.Getenv("LESS") == "" {
		// raw colors, quit on one screen, keep the screen on exit
		cmd.Env = append(cmd.Env, "LESS=-RFX")
	}
	return cmd.Run()
}
