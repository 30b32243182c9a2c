package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printStyles holds all the styles used in console reports.
type printStyles struct {
	header lipgloss.Style
	gradeA lipgloss.Style
	gradeB lipgloss.Style
	gradeC lipgloss.Style
	gradeD lipgloss.Style
	gradeF lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	dim    lipgloss.Style
	bar    lipgloss.Style
}

// newPrintStyles creates styles bound to w. With colorize off every style
// renders its input unchanged.
func newPrintStyles(w io.Writer, colorize bool) printStyles {
	r := lipgloss.NewRenderer(w)
	if !colorize {
		plain := r.NewStyle()
		return printStyles{
			header: plain, gradeA: plain, gradeB: plain, gradeC: plain,
			gradeD: plain, gradeF: plain, err: plain, warn: plain, dim: plain, bar: plain,
		}
	}
	return printStyles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		gradeA: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		gradeB: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		gradeC: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		gradeD: r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		gradeF: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("8")),
		bar:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// grade returns the style for a letter grade.
func (s printStyles) grade(g string) lipgloss.Style {
	switch g {
	case "A":
		return s.gradeA
	case "B":
		return s.gradeB
	case "C":
		return s.gradeC
	case "D":
		return s.gradeD
	default:
		return s.gradeF
	}
}
