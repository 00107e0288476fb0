// Package conslist implements a subprogram that builds a persistent list from
// command-line arguments, a range or stdin, optionally transforms it, and
// prints the result.
package conslist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"src.elv.sh/cons/pkg/logutil"
	"src.elv.sh/cons/pkg/persistent/list"
	"src.elv.sh/cons/pkg/prog"
)

var logger = logutil.GetLogger("[conslist] ")

// Program is the conslist subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	out, err := newPrinter(fds[1], f)
	if err != nil {
		return err
	}
	l, err := readList(fds[0], f.Range, args)
	if err != nil {
		return err
	}
	logger.Printf("read %d elements", l.Len())

	if f.Map != "" {
		l, err = mapList(l, f.Map)
		if err != nil {
			return err
		}
	}
	if f.Reverse {
		l = l.Reverse()
	}
	if f.Update != "" {
		l, err = updateList(l, f.Update)
		if err != nil {
			return err
		}
	}

	switch {
	case f.At != nil:
		v, ok := l.At(*f.At)
		if !ok {
			logger.Printf("index %d out of range for %d elements", *f.At, l.Len())
			return prog.Exit(1)
		}
		return out.scalar(v)
	case f.Fold != "":
		v, err := foldList(l, f.Fold, f.Init)
		if err != nil {
			return err
		}
		return out.scalar(v)
	case f.Len:
		return out.scalar(l.Len())
	default:
		return out.list(l)
	}
}

func readList(stdin *os.File, rangeSpec string, args []string) (*list.List[any], error) {
	switch {
	case rangeSpec != "" && len(args) > 0:
		return nil, prog.BadUsage("-range cannot be used with elements")
	case len(args) > 0:
		return list.Map(list.FromSlice(args), parseElem), nil
	case rangeSpec != "":
		return parseRange(rangeSpec)
	case prog.IsATTY(stdin):
		return nil, prog.BadUsage("no input")
	}
	return readElems(stdin)
}

func readElems(r io.Reader) (*list.List[any], error) {
	var elems []any
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		elems = append(elems, parseElem(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list.FromSlice(elems), nil
}

// Words that look like numbers become int or float64; others stay strings.
func parseElem(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func parseRange(spec string) (*list.List[any], error) {
	fields := strings.Split(spec, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return nil, prog.BadUsage("-range must be FROM:TO or FROM:TO:STEP")
	}
	nums := []int{0, 0, 1}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, prog.BadUsage(fmt.Sprintf("bad number in -range: %q", field))
		}
		nums[i] = n
	}
	r := list.RangeStep(nums[0], nums[1], nums[2])
	return list.Map(r, func(i int) any { return i }), nil
}

func compile(flagName, code string) (*vm.Program, error) {
	program, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("bad -%s expression: %w", flagName, err)
	}
	return program, nil
}

func mapList(l *list.List[any], code string) (*list.List[any], error) {
	program, err := compile("map", code)
	if err != nil {
		return nil, err
	}
	var runErr error
	m := list.Map(l, func(x any) any {
		if runErr != nil {
			return nil
		}
		v, err := expr.Run(program, map[string]any{"x": x})
		if err != nil {
			runErr = fmt.Errorf("cannot evaluate -map expression: %w", err)
		}
		return v
	})
	return m, runErr
}

func updateList(l *list.List[any], spec string) (*list.List[any], error) {
	index, code, ok := strings.Cut(spec, "=")
	i, err := strconv.Atoi(index)
	if !ok || err != nil {
		return nil, prog.BadUsage("-update must be I=EXPR")
	}
	program, err := compile("update", code)
	if err != nil {
		return nil, err
	}
	var runErr error
	u := l.Update(i, func(x any) any {
		v, err := expr.Run(program, map[string]any{"x": x})
		if err != nil {
			runErr = fmt.Errorf("cannot evaluate -update expression: %w", err)
		}
		return v
	})
	return u, runErr
}

func foldList(l *list.List[any], code, initCode string) (any, error) {
	program, err := compile("fold", code)
	if err != nil {
		return nil, err
	}
	init, err := expr.Eval(initCode, nil)
	if err != nil {
		return nil, fmt.Errorf("bad -init expression: %w", err)
	}
	var runErr error
	v := list.FoldLeft(l, init, func(acc, x any) any {
		if runErr != nil {
			return nil
		}
		v, err := expr.Run(program, map[string]any{"acc": acc, "x": x})
		if err != nil {
			runErr = fmt.Errorf("cannot evaluate -fold expression: %w", err)
		}
		return v
	})
	return v, runErr
}

type printer struct {
	w      io.Writer
	format string
	// Used for elements in plain output.
	elem *color.Color
}

func newPrinter(file *os.File, f *prog.Flags) (*printer, error) {
	switch f.Format {
	case "plain", "json", "yaml":
	default:
		return nil, prog.BadUsage("unknown format: " + f.Format)
	}
	elem := color.New(color.FgCyan)
	switch f.Color {
	case "auto":
		if prog.IsATTY(file) {
			elem.EnableColor()
		} else {
			elem.DisableColor()
		}
	case "always":
		elem.EnableColor()
	case "never":
		elem.DisableColor()
	default:
		return nil, prog.BadUsage("unknown color mode: " + f.Color)
	}
	return &printer{file, f.Format, elem}, nil
}

func (p *printer) list(l *list.List[any]) error {
	switch p.format {
	case "json":
		bs, err := l.MarshalJSON()
		if err != nil {
			return err
		}
		return p.writeLine(string(bs))
	case "yaml":
		var v any = l
		if l.IsEmpty() {
			// A nil list would be encoded as null.
			v = []any{}
		}
		return p.writeYAML(v)
	default:
		return list.Print(p.w, list.Map(l, func(v any) string { return p.elem.Sprint(v) }))
	}
}

func (p *printer) scalar(v any) error {
	switch p.format {
	case "json":
		bs, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return p.writeLine(string(bs))
	case "yaml":
		return p.writeYAML(v)
	default:
		return p.writeLine(p.elem.Sprint(v))
	}
}

func (p *printer) writeYAML(v any) error {
	bs, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.w.Write(bs)
	return err
}

func (p *printer) writeLine(s string) error {
	_, err := io.WriteString(p.w, s+"\n")
	return err
}
