package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

var tableCmd = &cobra.Command{
	Use:   "table FORMULA",
	Short: "Print the truth table of a formula.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := parseFormulaArg(args[0])
		log.Debugf("%d free variables, %d rows", len(f.Vars()), 1<<len(f.Vars()))
		if err := prop.WriteTruthTable(os.Stdout, f); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
