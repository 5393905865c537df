// Package cobrahelp lays out the help of a cobra command with a
// helptext.Builder.
//
//	root := &cobra.Command{Use: "tool"}
//	cobrahelp.Install(root, helptext.WithWrap(true))
package cobrahelp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/helptext"
)

const tab = "    "

// Build lays out the help of cmd: summary, long description, usage lines,
// available subcommands, local flags and inherited flags.
func Build(cmd *cobra.Command, opts ...helptext.Option) *helptext.Builder {
	b := helptext.New(cmd.CommandPath(), opts...)

	b.Title()
	if cmd.Short != "" {
		b.PushWrapIndent(len([]rune(cmd.CommandPath())) + 3).Text(" - ", cmd.Short).PopWrapIndent()
	}
	b.NL()

	if long := strings.TrimSpace(cmd.Long); long != "" {
		b.NL().Text(long).NL()
	}

	if cmd.Runnable() || cmd.HasAvailableSubCommands() {
		b.NL().Usage().NL()
		if cmd.Runnable() {
			usageLine(b, cmd.UseLine())
		}
		if cmd.HasAvailableSubCommands() {
			usageLine(b, cmd.CommandPath()+" [command]")
		}
	}

	if cmd.HasAvailableSubCommands() {
		b.NL().Bold("Commands:").NL().Dict()
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() && sub.Name() != "help" {
				continue
			}
			b.Tab().Key().Text(sub.Name()).End().Value().Text(sub.Short).End().NL()
		}
		b.EndDict()
	}

	if cmd.HasAvailableLocalFlags() {
		b.NL().Flags().NL()
		flagDict(b, cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		b.NL().Bold("Global Flags:").NL()
		flagDict(b, cmd.InheritedFlags())
	}

	if cmd.HasExample() {
		b.NL().Bold("Examples:").NL().Text(strings.TrimRight(cmd.Example, "\n")).NL()
	}
	return b
}

// Render returns the laid out help of cmd.
func Render(cmd *cobra.Command, opts ...helptext.Option) string {
	return Build(cmd, opts...).String()
}

// Install makes cmd and its subcommands print help with Render.
func Install(cmd *cobra.Command, opts ...helptext.Option) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(c.OutOrStdout(), Render(c, opts...))
	})
}

func usageLine(b *helptext.Builder, line string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	b.Tab().Text(words[0])
	b.PushWrapIndent(len(tab) + len([]rune(words[0])) + 1)
	for _, word := range words[1:] {
		b.Space()
		if len(word) > 2 && strings.HasPrefix(word, "<") && strings.HasSuffix(word, ">") {
			b.Param(word[1 : len(word)-1])
			continue
		}
		b.Text(word)
	}
	b.PopWrapIndent()
	b.NL()
}

func flagDict(b *helptext.Builder, fs *pflag.FlagSet) {
	b.Dict()
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		names := make([]string, 0, 2)
		if f.Shorthand != "" && f.ShorthandDeprecated == "" {
			names = append(names, "-"+f.Shorthand)
		}
		names = append(names, "--"+f.Name)

		varname, usage := pflag.UnquoteUsage(f)
		b.Tab().Key().Flag(names...)
		if varname != "" {
			b.Space().Param(varname)
		}
		b.End().Value().Text(usage)
		if def := defaultText(f); def != "" {
			b.Text(" (default ", def, ")")
		}
		b.End().NL()
	})
	b.EndDict()
}

// defaultText returns the default value worth showing, or "" for zero values.
func defaultText(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "false", "0", "[]", "<nil>":
		return ""
	}
	if f.Value.Type() == "string" {
		return fmt.Sprintf("%q", f.DefValue)
	}
	return f.DefValue
}
