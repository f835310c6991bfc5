package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proplogic/propcalc/prop"
)

// fail reports an input error and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// getFlagBool reads a flag that is known to exist; a lookup error is a
// programming mistake, not an input error.
func getFlagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return v
}

func getFlagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return v
}

func getFlagStringSlice(cmd *cobra.Command, name string) []string {
	v, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return v
}

func getFlagStringArray(cmd *cobra.Command, name string) []string {
	v, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return v
}

// parseFormulaArg parses a formula argument, exiting with a diagnostic when
// it is not valid.
func parseFormulaArg(arg string) prop.Formula {
	f, err := prop.Parse(arg)
	if err != nil {
		fail(fmt.Errorf("invalid formula %q: %v", arg, err))
	}
	return f
}

// parseModel parses comma-separated variable bindings such as "p=T,q76=F".
func parseModel(s string) (prop.Model, error) {
	m := make(prop.Model)
	if s == "" {
		return m, nil
	}
	for _, binding := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, fmt.Errorf("invalid binding %q, want name=T or name=F", binding)
		}
		if !prop.IsVariableName(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		switch value {
		case "T":
			m[name] = true
		case "F":
			m[name] = false
		default:
			return nil, fmt.Errorf("invalid truth value %q for variable %s, want T or F", value, name)
		}
	}
	return m, nil
}

// parseValues parses a comma-separated truth-table column such as "T,T,T,F".
func parseValues(s string) ([]bool, error) {
	if s == "" {
		return nil, fmt.Errorf("no truth values given")
	}
	fields := strings.Split(s, ",")
	values := make([]bool, len(fields))
	for i, field := range fields {
		switch field {
		case "T":
			values[i] = true
		case "F":
			values[i] = false
		default:
			return nil, fmt.Errorf("invalid truth value %q, want T or F", field)
		}
	}
	return values, nil
}
