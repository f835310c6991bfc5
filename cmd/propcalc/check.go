package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

var checkCmd = &cobra.Command{
	Use:   "check FORMULA",
	Short: "Classify a formula as tautology, contradiction or satisfiable.",
	Long: "Classify a formula by enumerating all models over its free " +
		"variables: a tautology is true everywhere, a contradiction nowhere, " +
		"and anything else is reported as satisfiable.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := parseFormulaArg(args[0])
		switch {
		case prop.IsTautology(f):
			fmt.Println("tautology")
		case prop.IsContradiction(f):
			fmt.Println("contradiction")
		default:
			fmt.Println("satisfiable")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
