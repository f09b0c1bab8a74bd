package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// traceKeys are the trace keys of the packages used by pcrepl.
var traceKeys = []string{"pcomb.repl", "pcomb.parsec", "pcomb.stream", "pcomb.expr", "pcomb.json"}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cobra.CheckErr(newCLI().Execute())
}

// newCLI creates the command tree.
func newCLI() *cobra.Command {
	var tlevel string
	rootCmd := &cobra.Command{
		Use:   "pcrepl",
		Short: "Playground for parser combinators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
			setTraceLevel(tlevel)
		},
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")

	calcCmd := &cobra.Command{
		Use:   "calc [expression]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate arithmetic expressions. Without an expression argument, calc
starts an interactive session. Operators, from tightest to loosest binding:

    - +        (prefix)
    !          (postfix, factorial)
    ^          (right associative)
    * / %      (left associative)
    + -        (left associative)
    < > =      (non-associative, 1 for true, 0 for false)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return calcREPL()
			}
			return calcOnce(args)
		},
	}

	jsonCmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Parse a JSON file and display it as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showJSON(args[0])
		},
	}

	rootCmd.AddCommand(calcCmd, jsonCmd)
	return rootCmd
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", l)
}
