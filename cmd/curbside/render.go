package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/logrusorgru/aurora"

	"github.com/boristopalov/curbside/pkg/experiment"
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#5F5F87")).
	PaddingLeft(1).
	PaddingRight(1)

// renderText prints the run header, the audit log and a summary block
func renderText(res *experiment.Result, color bool) string {
	au := aurora.NewAurora(color)
	var b strings.Builder

	fmt.Fprintf(&b, "\n--- Running %s Collection ---\n", capitalize(res.DayType))
	fmt.Fprintf(&b, "Locations: 0 .. %d\n\n", res.NumLocations-1)
	for _, line := range res.Logs {
		fmt.Fprintln(&b, colorLine(au, line))
	}

	fmt.Fprintln(&b, "\n--- Summary ---")
	summary := strings.Join([]string{
		fmt.Sprintf("num_locations: %d", res.NumLocations),
		fmt.Sprintf("day_type: %s", res.DayType),
		fmt.Sprintf("uncollected_locations: %v", res.UncollectedLocations),
		fmt.Sprintf("contamination_locations: %v", res.ContaminationLocations),
		fmt.Sprintf("fine_uncollected_$: %d", res.FineUncollected),
		fmt.Sprintf("fine_contamination_$: %d", res.FineContamination),
		fmt.Sprintf("total_fines_$: %d", res.TotalFines),
	}, "\n")
	if color {
		summary = summaryStyle.Render(summary)
	}
	fmt.Fprintln(&b, summary)
	return b.String()
}

func colorLine(au aurora.Aurora, line string) string {
	switch {
	case strings.HasPrefix(line, "[inspection]"):
		return au.Red(line).String()
	case strings.Contains(line, "] Missed "):
		return au.Yellow(line).String()
	case strings.Contains(line, "] Collected "):
		return au.Green(line).String()
	}
	return line
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
