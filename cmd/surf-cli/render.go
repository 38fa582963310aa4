package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.ngs.io/surf-api/internal/domain"
	"go.ngs.io/surf-api/internal/usecase"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#6C757D")
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorBorder  = lipgloss.Color("#4A90E2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Width(12).
			Align(lipgloss.Right)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// renderForecast renders a forecast as a bordered card.
func renderForecast(f *domain.Forecast) string {
	waves := f.Current.Waves
	wind := f.Current.Wind

	rows := []string{
		titleStyle.Render(f.BeachName),
		mutedStyle.Render(fmt.Sprintf("%.4f, %.4f", f.Latitude, f.Longitude)),
		"",
		row("Waves", formatValue(waves.HeightM, "m")),
		row("Period", formatValue(waves.PeriodS, "s")),
		row("Direction", fmt.Sprintf("%s (%s)", waves.DirectionLabel, formatValue(waves.DirectionDeg, "°"))),
		row("Wind", fmt.Sprintf("%s (%s)", formatValue(wind.SpeedKmh, "km/h"), wind.DirectionLabel)),
	}
	if f.Current.ObservedAt != nil {
		rows = append(rows, "", mutedStyle.Render("Observed "+*f.Current.ObservedAt))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderGroups renders the registry grouped by country.
func renderGroups(groups []usecase.OptionGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(g.Country))
		b.WriteString("\n")
		if len(g.Options) == 0 {
			b.WriteString("  " + mutedStyle.Render("(none)") + "\n")
			continue
		}
		for _, o := range g.Options {
			fmt.Fprintf(&b, "  %-16s %s\n", o.ID, o.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label+":"), " ", value)
}

func formatValue(v *float64, unit string) string {
	if v == nil {
		return domain.NotAvailable
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if unit == "°" {
		return s + unit
	}
	return s + " " + unit
}
