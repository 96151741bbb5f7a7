package theme

import (
	"github.com/fatih/color"
)

// Theme defines the interface for theming in the application
type Theme interface {
	// Primary returns the primary style
	Primary() *Style

	// Secondary returns the secondary style
	Secondary() *Style

	// Success returns the success style
	Success() *Style

	// Error returns the error style
	Error() *Style

	// Warning returns the warning style
	Warning() *Style

	// Info returns the info style
	Info() *Style

	// Subtle returns the subtle style
	Subtle() *Style
}

// DefaultTheme represents the default theme implementation
type DefaultTheme struct {
	primary   *Style
	secondary *Style
	success   *Style
	error     *Style
	warning   *Style
	info      *Style
	subtle    *Style
}

// NewDefaultTheme creates a new default theme
func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgHiCyan, color.Bold),
		secondary: NewStyle(color.FgBlue),
		success:   NewStyle(color.FgGreen, color.Bold),
		error:     NewStyle(color.FgRed, color.Bold),
		warning:   NewStyle(color.FgYellow),
		info:      NewStyle(color.FgWhite),
		subtle:    NewStyle(color.FgHiBlack),
	}
}

// NewProfessionalTheme creates a calmer theme suitable for everyday use
func NewProfessionalTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgBlue, color.Bold),
		secondary: NewStyle(color.FgHiBlue),
		success:   NewStyle(color.FgGreen),
		error:     NewStyle(color.FgRed),
		warning:   NewStyle(color.FgYellow),
		info:      NewStyle(color.FgWhite),
		subtle:    NewStyle(color.FgHiBlack),
	}
}

// Primary returns the primary style
func (t *DefaultTheme) Primary() *Style {
	return t.primary
}

// Secondary returns the secondary style
func (t *DefaultTheme) Secondary() *Style {
	return t.secondary
}

// Success returns the success style
func (t *DefaultTheme) Success() *Style {
	return t.success
}

// Error returns the error style
func (t *DefaultTheme) Error() *Style {
	return t.error
}

// Warning returns the warning style
func (t *DefaultTheme) Warning() *Style {
	return t.warning
}

// Info returns the info style
func (t *DefaultTheme) Info() *Style {
	return t.info
}

// Subtle returns the subtle style
func (t *DefaultTheme) Subtle() *Style {
	return t.subtle
}
