package cli

import "github.com/spf13/cobra"

// BoolFlag defines a boolean flag for a command.
type BoolFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   bool
}

// StringFlag defines a string flag for a command.
type StringFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   string
}

// StringArrayFlag defines a repeatable string flag. Values are taken
// verbatim; commas are not treated as separators.
type StringArrayFlag struct {
	Name      string
	Shorthand string
	Usage     string
}

// LeafCommand describes a runnable command. Commands declare one as a
// package-level value and call Build() on it.
type LeafCommand struct {
	Use       string
	Short     string
	Example   string
	Args      cobra.PositionalArgs
	BoolFlags []BoolFlag
	StrFlags  []StringFlag
	ArrFlags  []StringArrayFlag
	RunE      func(cmd *cobra.Command, args []string) error
}

// Build creates the cobra.Command and registers its flags.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     lc.Use,
		Short:   lc.Short,
		Example: lc.Example,
		Args:    lc.Args,
		RunE:    lc.RunE,
	}
	flags := cmd.Flags()
	for _, f := range lc.BoolFlags {
		flags.BoolP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		flags.StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.ArrFlags {
		flags.StringArrayP(f.Name, f.Shorthand, nil, f.Usage)
	}
	return cmd
}
