// Command propcalc is a toolbox for propositional-logic formulas: it
// evaluates them, prints truth tables, classifies them, synthesizes formulas
// from truth tables, rewrites formulas into restricted operator bases and
// checks the soundness of inference rules.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommand.
var rootCmd = &cobra.Command{
	Use:   "propcalc",
	Short: "A toolbox for propositional-logic formulas.",
	Long: "A toolbox for parsing, evaluating and transforming formulas of " +
		"propositional logic written in the canonical syntax, e.g. ~(p&q76).",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlagBool(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
