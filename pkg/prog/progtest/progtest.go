// Package progtest contains utilities for testing subprograms.
package progtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.elv.sh/cons/pkg/prog"
)

// Case is a test case for Test. It is created by ThatProg and augmented with
// the chainable setters.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit           int
	stdout, stderr output
}

type output struct {
	content string
	partial bool
}

// ThatProg returns a new Case with the given command-line arguments, not
// including the program name. By default, the program is expected to exit
// with 0 and write nothing to stdout or stderr.
func ThatProg(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that feeds the given text to the program
// on stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write some text to stdout that contains the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write some text to stderr that contains the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(t, p, c.stdin, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %v, want %v", exit, c.want.exit)
			}
			c.want.stdout.check(t, "stdout", stdout)
			c.want.stderr.check(t, "stderr", stderr)
		})
	}
}

func (o output) check(t *testing.T, name, got string) {
	t.Helper()
	if o.partial {
		if !strings.Contains(got, o.content) {
			t.Errorf("got %s %q, want one containing %q", name, got, o.content)
		}
	} else if got != o.content {
		t.Errorf("got %s %q, want %q", name, got, o.content)
	}
}

// Run runs a program with the given stdin and arguments, and returns its exit
// status and output. Stdin, stdout and stderr are regular files in a temporary
// directory, so none of them is a terminal.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (int, string, string) {
	t.Helper()
	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "stdin"), stdin)
	out := writeFile(t, filepath.Join(dir, "stdout"), "")
	errOut := writeFile(t, filepath.Join(dir, "stderr"), "")
	defer in.Close()
	defer out.Close()
	defer errOut.Close()

	exit := prog.Run([3]*os.File{in, out, errOut}, append([]string{"conslist"}, args...), p)
	return exit, readFile(t, out.Name()), readFile(t, errOut.Name())
}

func writeFile(t *testing.T, name, content string) *os.File {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	file, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	return file
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}
