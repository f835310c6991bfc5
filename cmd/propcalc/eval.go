package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

var evalCmd = &cobra.Command{
	Use:   "eval FORMULA",
	Short: "Evaluate a formula under a model.",
	Long:  "Evaluate a formula under the model given with --model and print T or F.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := parseFormulaArg(args[0])
		m, err := parseModel(getFlagString(cmd, "model"))
		if err != nil {
			fail(err)
		}
		for _, v := range f.Vars() {
			if _, ok := m[v]; !ok {
				fail(fmt.Errorf("model lacks a binding for variable %s", v))
			}
		}
		log.Debugf("evaluating %s under %d bindings", f, len(m))
		if prop.Evaluate(f, m) {
			fmt.Println("T")
		} else {
			fmt.Println("F")
		}
	},
}

func init() {
	evalCmd.Flags().StringP("model", "m", "", "comma-separated bindings, e.g. p=T,q76=F")
	rootCmd.AddCommand(evalCmd)
}
