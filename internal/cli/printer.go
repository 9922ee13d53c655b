package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	SymbolPass    = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"

	Indent = "  "
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func Header(title string) {
	width := 60
	padding := (width - len([]rune(title)) - 2) / 2
	border := strings.Repeat("═", width)

	fmt.Println()
	fmt.Printf("╔%s╗\n", border)
	fmt.Printf("║%s %s %s║\n",
		strings.Repeat(" ", padding),
		headerStyle.Render(title),
		strings.Repeat(" ", width-padding-len([]rune(title))-2))
	fmt.Printf("╚%s╝\n", border)
	fmt.Println()
}

func Section(title string) {
	fmt.Printf("\n━━ %s ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n",
		headerStyle.Render(title))
}

func Infof(format string, args ...any) {
	fmt.Printf("%s%s %s\n", Indent, infoStyle.Render(SymbolInfo), fmt.Sprintf(format, args...))
}

func Successf(format string, args ...any) {
	fmt.Printf("%s%s %s\n", Indent, passStyle.Render(SymbolPass), fmt.Sprintf(format, args...))
}

func Failf(format string, args ...any) {
	fmt.Printf("%s%s %s\n", Indent, failStyle.Render(SymbolFail), fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	fmt.Printf("%s%s %s\n", Indent, warnStyle.Render(SymbolWarning), fmt.Sprintf(format, args...))
}

func KeyValue(key, value string) {
	fmt.Printf("%s%-24s %s\n", Indent, key+":", value)
}

func Blank() {
	fmt.Println()
}

// FormatMillis renders a millisecond latency the way the report prints it.
func FormatMillis(ms float64) string {
	return fmt.Sprintf("%.2fms", ms)
}

func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
