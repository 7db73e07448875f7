package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/docflow-ai/docflow/internal/profile"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// PrintWelcome prints the session banner and the profile's greeting.
func PrintWelcome(out io.Writer, prof *profile.Profile) {
	fmt.Fprintln(out, bannerStyle.Render("Docflow — "+prof.Role))
	if greeting := prof.Greeting(); greeting != "" {
		fmt.Fprintln(out, greetingStyle.Render(greeting))
	}
	fmt.Fprintln(out)
}
