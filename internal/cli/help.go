package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// helpRule styles help lines matching re. When split is set, the first
// capture group is kept as indentation, the second is highlighted and the
// rest is rendered as plain text.
type helpRule struct {
	re    *regexp.Regexp
	style func(string) string
	split bool
}

var helpRules = []helpRule{
	// Section headers: "Usage:", "Available Commands:", "Flags:"
	{re: regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`), style: Info},
	// Footer: `Use "bookrange [command] --help" ...`
	{re: regexp.MustCompile(`^Use "`), style: Silent},
	// Flags: "  -f, --file string   bookings file"
	{re: regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`), style: Primary, split: true},
	// Commands: "  merge       Merge overlapping ..."
	{re: regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`), style: Primary, split: true},
}

// styledHelpFunc returns a help function that prints the command's short
// description followed by Cobra's usage text with colors applied.
func styledHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		if cmd.Short != "" {
			result.WriteString(Primary(cmd.Short) + "\n\n")
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(styleHelpLine(line))
			result.WriteString("\n")
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

// styleHelpLine applies the first matching rule to a single line of help output.
func styleHelpLine(line string) string {
	for _, r := range helpRules {
		if !r.split {
			if r.re.MatchString(strings.TrimSpace(line)) {
				return r.style(line)
			}
			continue
		}
		if m := r.re.FindStringSubmatch(line); m != nil {
			return m[1] + r.style(m[2]) + Text(m[3])
		}
	}
	return Text(line)
}
