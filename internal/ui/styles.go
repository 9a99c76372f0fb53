package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette. Each color has a light and a dark background
// variant; the renderer picks one from the dark-mode preference.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#0077B6", Dark: "#00BFFF"} // accent, titles
	colorAccent  = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"} // stars, favorites
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1B873F", Dark: "#00E676"} // confirmations
	colorDanger  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5252"} // errors
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#636363"} // de-emphasized
	colorText    = lipgloss.AdaptiveColor{Light: "#1E1E2E", Dark: "#EEEEEE"} // body text
)

// Status icons.
const (
	iconDone     = "✓"
	iconFailed   = "✗"
	iconInfo     = "·"
	iconWarn     = "!"
	iconFavorite = "★"
	iconPlain    = "☆"
	iconEmpty    = "–"
)

// styles holds every style the printer uses, bound to one renderer so color
// output follows the writer's terminal profile.
type styles struct {
	title    lipgloss.Style
	badge    lipgloss.Style
	star     lipgloss.Style
	dim      lipgloss.Style
	text     lipgloss.Style
	success  lipgloss.Style
	danger   lipgloss.Style
	warn     lipgloss.Style
	header   lipgloss.Style
	detail   lipgloss.Style
	checked  lipgloss.Style
	slotName lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Foreground(colorPrimary).Bold(true),
		badge:    r.NewStyle().Foreground(colorPrimary),
		star:     r.NewStyle().Foreground(colorAccent),
		dim:      r.NewStyle().Foreground(colorMuted),
		text:     r.NewStyle().Foreground(colorText),
		success:  r.NewStyle().Foreground(colorSuccess).Bold(true),
		danger:   r.NewStyle().Foreground(colorDanger).Bold(true),
		warn:     r.NewStyle().Foreground(colorAccent).Bold(true),
		header:   r.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true),
		detail:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
		checked:  r.NewStyle().Foreground(colorMuted).Strikethrough(true),
		slotName: r.NewStyle().Foreground(colorMuted).Width(10),
	}
}
