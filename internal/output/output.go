// Package output prints command results as yaml, json or text.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer is where Print writes. Tests swap it for a buffer.
var Writer io.Writer = os.Stdout

// Texter is implemented by results with a human-readable rendering.
type Texter interface {
	Text() string
}

// ParseFormat validates a --format value. The empty string picks the
// default for stdout.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return DefaultFormat(os.Stdout), nil
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml, json, or text)", s)
	}
}

// DefaultFormat is text on a terminal and yaml when piped.
func DefaultFormat(f *os.File) Format {
	if IsTerminal(f) {
		return FormatText
	}
	return FormatYAML
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Print serializes v to Writer in the current output format.
func Print(v interface{}) error {
	return Fprint(Writer, OutputFormat, v)
}

// Fprint serializes v to w in format. Text falls back to yaml for values
// without a Text method.
func Fprint(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(w, v)
		}
		return PrintJSON(w, v)
	case FormatYAML:
		return PrintYAML(w, v)
	case FormatText:
		if t, ok := v.(Texter); ok {
			_, err := io.WriteString(w, t.Text())
			return err
		}
		return PrintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
