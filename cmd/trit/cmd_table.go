package main

import (
	"fmt"

	"github.com/ndrego/trit"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the crisp truth table of every binary connective",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

var tableOps = []string{"&", "|", "^", "~^", "~&", "~|"}

func runTable(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "a b |")
	for _, op := range tableOps {
		fmt.Fprintf(out, " %2s", op)
	}
	fmt.Fprintln(out)

	for _, a := range []trit.Trit{trit.Lo, trit.Hi} {
		for _, b := range []trit.Trit{trit.Lo, trit.Hi} {
			fmt.Fprintf(out, "%s %s |", a, b)
			for _, op := range tableOps {
				v, err := a.BinaryOp(op, b)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, " %2s", v)
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
