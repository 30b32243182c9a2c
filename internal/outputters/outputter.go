package outputters

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dotcommander/thinkcheck/internal/batch"
	"github.com/dotcommander/thinkcheck/internal/config"
	"github.com/dotcommander/thinkcheck/internal/output"
)

// Formatter renders a batch of results.
type Formatter interface {
	Format(results []batch.Result) error
}

// FormatterFactory creates a Formatter for a format name writing to w.
type FormatterFactory interface {
	CreateFormatter(format string, w io.Writer) (Formatter, error)
}

// DefaultFormatterFactory builds the console, json and markdown formatters.
type DefaultFormatterFactory struct {
	config  *config.Config
	version string
}

// NewDefaultFormatterFactory creates the factory used by NewOutputter.
func NewDefaultFormatterFactory(cfg *config.Config, version string) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{config: cfg, version: version}
}

// CreateFormatter returns the formatter for format.
func (f *DefaultFormatterFactory) CreateFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(w, f.config.Quiet, f.config.Verbose, f.colorize(w), f.config.MinScore), nil
	case "json":
		return output.NewJSONFormatter(w, f.version, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(w, f.config.MinScore), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// colorize enables styling only for terminals, unless disabled by config.
func (f *DefaultFormatterFactory) colorize(w io.Writer) bool {
	if f.config.NoColor {
		return false
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter writing to stdout unless the config
// names an output file.
func NewOutputter(cfg *config.Config, version string) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg, version))
}

// NewOutputterWithFactory creates an Outputter with a custom factory.
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: factory,
		stdout:  os.Stdout,
	}
}

// SetWriter replaces stdout as the default destination.
func (o *Outputter) SetWriter(w io.Writer) {
	o.stdout = w
}

// Format renders results using the configured format and destination. A
// report file is only written once rendering has succeeded.
func (o *Outputter) Format(results []batch.Result) error {
	if o.config.Output == "" {
		return o.render(o.stdout, results)
	}

	var buf bytes.Buffer
	if err := o.render(&buf, results); err != nil {
		return err
	}
	if err := os.WriteFile(o.config.Output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing to file %s: %w", o.config.Output, err)
	}
	return nil
}

func (o *Outputter) render(w io.Writer, results []batch.Result) error {
	formatter, err := o.factory.CreateFormatter(o.config.Format, w)
	if err != nil {
		return err
	}
	if err := formatter.Format(results); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
