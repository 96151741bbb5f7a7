package theme

import (
	"fmt"
	"strings"
)

// Manager handles theme selection and management
type Manager struct {
	currentTheme Theme
}

// NewManager creates a new theme manager
func NewManager(t Theme) *Manager {
	return &Manager{
		currentTheme: t,
	}
}

// GetCurrentTheme returns the currently active theme
func (m *Manager) GetCurrentTheme() Theme {
	return m.currentTheme
}

// DisplayBanner prints a styled banner with the given title and optional subtitles
func (m *Manager) DisplayBanner(title string, width int, subtitle ...string) {
	primary := m.currentTheme.Primary()
	secondary := m.currentTheme.Secondary()

	if width < len(title)+4 {
		width = len(title) + 4
	}
	for _, sub := range subtitle {
		if len(sub)+4 > width {
			width = len(sub) + 4
		}
	}

	titlePadding := (width - len(title) - 2) / 2
	titleLeftPadding := titlePadding
	titleRightPadding := titlePadding
	if (width-len(title)-2)%2 != 0 {
		titleRightPadding++
	}

	primary.Println("╔" + strings.Repeat("═", width-2) + "╗")
	primary.Println(fmt.Sprintf("║%s%s%s║",
		strings.Repeat(" ", titleLeftPadding), title, strings.Repeat(" ", titleRightPadding)))

	if len(subtitle) > 0 {
		primary.Println("║" + strings.Repeat("─", width-2) + "║")

		for _, sub := range subtitle {
			subPadding := (width - len(sub) - 2) / 2
			subLeftPadding := subPadding
			subRightPadding := subPadding
			if (width-len(sub)-2)%2 != 0 {
				subRightPadding++
			}
			secondary.Println(fmt.Sprintf("║%s%s%s║",
				strings.Repeat(" ", subLeftPadding), sub, strings.Repeat(" ", subRightPadding)))
		}
	}

	primary.Println("╚" + strings.Repeat("═", width-2) + "╝")
}
