package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a formula with a prescribed truth table.",
	Long: "Build a formula in disjunctive normal form (or conjunctive normal " +
		"form with --cnf) whose truth table over the given variables is " +
		"exactly the given column of values. Values follow the conventional " +
		"row order: the first variable is false in the first half of the rows.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		vars := getFlagStringSlice(cmd, "vars")
		if len(vars) == 0 {
			fail(errors.New("at least one variable is required"))
		}
		for _, v := range vars {
			if !prop.IsVariableName(v) {
				fail(fmt.Errorf("invalid variable name %q", v))
			}
		}
		values, err := parseValues(getFlagString(cmd, "values"))
		if err != nil {
			fail(err)
		}
		if len(values) != 1<<len(vars) {
			fail(fmt.Errorf("got %d truth values for %d variables, want %d",
				len(values), len(vars), 1<<len(vars)))
		}
		var f prop.Formula
		if getFlagBool(cmd, "cnf") {
			log.Debug("synthesizing a CNF")
			f = prop.SynthesizeCNF(vars, values)
		} else {
			log.Debug("synthesizing a DNF")
			f = prop.SynthesizeDNF(vars, values)
		}
		fmt.Println(f)
	},
}

func init() {
	synthCmd.Flags().StringSlice("vars", nil, "comma-separated variables, most significant first")
	synthCmd.Flags().String("values", "", "truth-table column, e.g. T,T,T,F")
	synthCmd.Flags().Bool("cnf", false, "synthesize a CNF instead of a DNF")
	rootCmd.AddCommand(synthCmd)
}
