// Package report prints human-readable status reports to a terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Reporter struct {
	w       io.Writer
	colored bool

	ok, warned, failed int

	green, yellow, red, bold func(string, ...any) string
}

type Option func(*Reporter)

// WithColor forces colored output on or off. Without it color is
// enabled only when the writer is a terminal.
func WithColor(v bool) Option {
	return func(r *Reporter) { r.colored = v }
}

func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w}
	if f, ok := w.(*os.File); ok {
		r.colored = isatty.IsTerminal(f.Fd())
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.colored {
		r.green = color.GreenString
		r.yellow = color.YellowString
		r.red = color.RedString
		r.bold = color.New(color.Bold).Sprintf
	} else {
		r.green = fmt.Sprintf
		r.yellow = fmt.Sprintf
		r.red = fmt.Sprintf
		r.bold = fmt.Sprintf
	}
	return r
}

func (r *Reporter) Section(name string) {
	fmt.Fprintf(r.w, "%s\n", r.bold("%s", name))
}

func (r *Reporter) OK(msg string, args ...any) {
	r.ok++
	fmt.Fprintf(r.w, "  %s %s\n", r.green("ok"), fmt.Sprintf(msg, args...))
}

func (r *Reporter) Warnf(msg string, args ...any) {
	r.warned++
	fmt.Fprintf(r.w, "  %s %s\n", r.yellow("warn"), fmt.Sprintf(msg, args...))
}

func (r *Reporter) Failf(msg string, args ...any) {
	r.failed++
	fmt.Fprintf(r.w, "  %s %s\n", r.red("fail"), fmt.Sprintf(msg, args...))
}

// Failed reports how many Failf calls the reporter has seen.
func (r *Reporter) Failed() int {
	return r.failed
}

func (r *Reporter) Summary() {
	fmt.Fprintf(r.w, "%s %s, %s, %s\n",
		r.bold("summary:"),
		r.green("%d ok", r.ok),
		r.yellow("%d warnings", r.warned),
		r.red("%d failures", r.failed))
}
