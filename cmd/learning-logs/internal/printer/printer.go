// Package printer writes the colored, line-oriented output of the learning-logs CLI.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ANSI color codes
const (
	ColorReset     = "\033[0m"
	ColorRed       = "\033[38;2;215;95;107m"
	ColorGreen     = "\033[38;2;158;206;106m"
	ColorYellow    = "\033[38;2;224;175;104m"
	ColorGray      = "\033[38;2;86;95;137m"
	ColorBold      = "\033[1m"
	ColorUnderline = "\033[4m"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Warn  = "⚠"
	Dot   = "•"
)

type ctxKey struct{}

// Printer handles formatted output with colors and styles.
type Printer struct {
	writer  io.Writer
	noColor bool
}

// New creates a new Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// NewPlain creates a Printer that never emits ANSI codes.
func NewPlain(w io.Writer) *Printer {
	return &Printer{writer: w, noColor: true}
}

// NewContext returns a context with the printer attached.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx retrieves the printer from context, or creates a default one on stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// FatalError prints a formatted error box and does NOT exit.
// Caller should handle exit code.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		p.printValidationErrors(err, fieldErrs)
		return
	}

	p.write(p.colorize(ColorRed, "╭ Error"))
	p.write(p.colorize(ColorRed, "│") + " " + p.colorize(ColorGray, err.Error()))
	p.write(p.colorize(ColorRed, "╵"))
}

// printValidationErrors lists every field error of an ozzo-validation result.
func (p *Printer) printValidationErrors(wrappedErr error, fieldErrs validation.Errors) {
	errStr := wrappedErr.Error()
	errContext := ""
	if idx := strings.Index(errStr, fieldErrs.Error()); idx > 0 {
		errContext = strings.TrimSuffix(errStr[:idx], ": ")
	}

	p.write(p.colorize(ColorRed, "╭ Validation Error"))
	if errContext != "" {
		p.write(p.colorize(ColorRed, "│") + " " + p.colorize(ColorGray, errContext))
		p.write(p.colorize(ColorRed, "│"))
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		line := p.colorize(ColorRed, "│") + " " + p.colorize(ColorRed, Cross) + " "
		line += p.colorize(ColorGray, field+": ") + fieldErrs[field].Error()
		p.write(line)
	}

	p.write(p.colorize(ColorRed, "╵"))
}

// Errorf prints an error message in red.
func (p *Printer) Errorf(format string, args ...any) {
	p.write(p.colorize(ColorRed, Cross+" "+fmt.Sprintf(format, args...)))
}

// Successf prints a success message in green.
func (p *Printer) Successf(format string, args ...any) {
	p.write(p.colorize(ColorGreen, Check+" "+fmt.Sprintf(format, args...)))
}

// Infof prints an info message in gray.
func (p *Printer) Infof(format string, args ...any) {
	p.write(p.colorize(ColorGray, Dot+" "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning message in yellow.
func (p *Printer) Warnf(format string, args ...any) {
	p.write(p.colorize(ColorYellow, Warn+" "+fmt.Sprintf(format, args...)))
}

// Printf prints a plain message without colors.
func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

// Prompt prints text without a trailing newline.
func (p *Printer) Prompt(text string) {
	_, _ = io.WriteString(p.writer, p.colorize(ColorBold, text))
}

// Section prints a section header (bold + underlined).
func (p *Printer) Section(title string) {
	p.write(p.colorize(ColorBold+ColorUnderline, title))
}

// Newline prints an empty line.
func (p *Printer) Newline() {
	p.write("")
}

func (p *Printer) write(line string) {
	_, _ = io.WriteString(p.writer, line+"\n")
}

// colorize applies ANSI color codes to text.
func (p *Printer) colorize(color, text string) string {
	if p.noColor {
		return text
	}
	return color + text + ColorReset
}
