package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

var soundCmd = &cobra.Command{
	Use:   "sound CONCLUSION",
	Short: "Check the soundness of an inference rule.",
	Long: "Check whether the conclusion holds in every model that satisfies " +
		"all the assumptions given with --assume. A rule without assumptions " +
		"is sound exactly when its conclusion is a tautology.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var assumptions []prop.Formula
		for _, a := range getFlagStringArray(cmd, "assume") {
			assumptions = append(assumptions, parseFormulaArg(a))
		}
		rule := prop.NewInferenceRule(assumptions, parseFormulaArg(args[0]))
		log.Debugf("checking %v over %d variables", rule, len(rule.Vars()))
		if prop.IsSound(rule) {
			fmt.Println("sound")
		} else {
			fmt.Println("unsound")
		}
	},
}

func init() {
	soundCmd.Flags().StringArrayP("assume", "a", nil, "assumption formula (repeatable)")
	rootCmd.AddCommand(soundCmd)
}
