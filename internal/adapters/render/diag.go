package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Diag prints [INFO] and [WARNING] diagnostics. Info lines appear only in
// verbose mode; warnings always print. Color follows the stream's TTY state.
type Diag struct {
	Verbose bool
	w       io.Writer
	info    func(a ...interface{}) string
	warn    func(a ...interface{}) string
}

// NewDiag creates a diagnostics printer for w, usually os.Stderr.
func NewDiag(w io.Writer, verbose bool) *Diag {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	paint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		if !useColor {
			return fmt.Sprint
		}
		return color.New(attrs...).SprintFunc()
	}
	return &Diag{
		Verbose: verbose,
		w:       w,
		info:    paint(color.FgCyan),
		warn:    paint(color.FgRed),
	}
}

// Infof prints an informational line when verbose mode is on.
func (d *Diag) Infof(format string, args ...interface{}) {
	if !d.Verbose {
		return
	}
	fmt.Fprintln(d.w, d.info("[INFO]    "+fmt.Sprintf(format, args...)))
}

// Warnf prints a non-blocking warning.
func (d *Diag) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(d.w, d.warn("[WARNING] "+fmt.Sprintf(format, args...)))
}
