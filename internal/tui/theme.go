package tui

import (
	"os"
	"strconv"
	"strings"

	"dws-console/internal/nav"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The console must stay readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor pairs and "faint" is only applied on dark ones.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "235")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorError      = ac("160", "203")
	colorOK         = ac("28", "78")

	// Content backgrounds, one per nav.Background.
	colorBgGray      = ac("252", "236")
	colorBgLightGray = ac("254", "235")
	colorBgWhite     = ac("231", "234")

	// Header variants.
	colorHeaderDefault   = ac("27", "62")
	colorHeaderSales     = ac("30", "36")
	colorHeaderTeamOwner = ac("91", "134")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Bold(true)
}

func styleOK() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOK)
}

func styleLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted).Width(16)
}

func backgroundColor(b nav.Background) lipgloss.AdaptiveColor {
	switch b {
	case nav.BackgroundWhite:
		return colorBgWhite
	case nav.BackgroundLightGray:
		return colorBgLightGray
	default:
		return colorBgGray
	}
}

func headerColor(v nav.HeaderVariant) lipgloss.AdaptiveColor {
	switch v {
	case nav.HeaderSales:
		return colorHeaderSales
	case nav.HeaderTeamOwner:
		return colorHeaderTeamOwner
	default:
		return colorHeaderDefault
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable colors in
// a TUI by accident. Only NO_COLOR (or --no-color) is honored here; otherwise the
// terminal's capabilities decide.
func applyColorProfilePreference(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) DWS_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg", last segment is the background)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DWS_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
