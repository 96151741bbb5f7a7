package theme

import (
	"fmt"
	"github.com/fatih/color"
	"io"
	"os"
)

// StylePrinter defines an interface for printing styled text
type StylePrinter interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})
}

// Style represents a named color style
type Style struct {
	fg      color.Attribute
	attrs   []color.Attribute
	printer *color.Color
	writer  io.Writer
}

// NewStyle creates a new style with a foreground color and attributes
func NewStyle(fg color.Attribute, attrs ...color.Attribute) *Style {
	c := color.New(fg)
	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{
		fg:      fg,
		attrs:   attrs,
		printer: c,
		writer:  os.Stdout,
	}
}

// WithWriter sets a custom writer for the style
func (s *Style) WithWriter(w io.Writer) *Style {
	s.writer = w
	return s
}

// Print prints text using the style
func (s *Style) Print(a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Print(a...)
		return
	}
	fmt.Fprint(s.writer, s.printer.Sprint(a...))
}

// Printf prints formatted text using the style
func (s *Style) Printf(format string, a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Printf(format, a...)
		return
	}
	fmt.Fprint(s.writer, s.printer.Sprintf(format, a...))
}

// Println prints text using the style followed by a newline
func (s *Style) Println(a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Println(a...)
		return
	}
	fmt.Fprintln(s.writer, s.printer.Sprint(a...))
}
