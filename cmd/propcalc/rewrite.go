package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

// bases maps the name of each target operator basis to its conversion.
var bases = map[string]func(prop.Formula) prop.Formula{
	"not-and-or":    prop.ToNotAndOr,
	"not-and":       prop.ToNotAnd,
	"nand":          prop.ToNand,
	"implies-not":   prop.ToImpliesNot,
	"implies-false": prop.ToImpliesFalse,
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite FORMULA",
	Short: "Rewrite a formula into a restricted operator basis.",
	Long: "Rewrite a formula into an equivalent one using only the operators " +
		"of the basis given with --basis: not-and-or, not-and, nand, " +
		"implies-not or implies-false. Constants are replaced by an " +
		"equivalent formula over the variable p where the basis has no " +
		"constant of its own.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		basis := getFlagString(cmd, "basis")
		convert, ok := bases[basis]
		if !ok {
			fail(fmt.Errorf("unknown operator basis %q", basis))
		}
		f := parseFormulaArg(args[0])
		g := convert(f)
		log.Debugf("rewrote %d-byte formula into %d bytes", len(f.String()), len(g.String()))
		fmt.Println(g)
	},
}

func init() {
	rewriteCmd.Flags().StringP("basis", "b", "not-and-or", "target operator basis")
	rootCmd.AddCommand(rewriteCmd)
}
