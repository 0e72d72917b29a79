package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndrego/trit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalCmd = &cobra.Command{
	Use:   "eval [op] [a] [b]",
	Short: "Apply a connective to one or two scalars",
	Long: `Applies a connective to scalars in [0, 1]. 0 and 1 are crisp, anything
between is fuzzy.

Operators: not (~), and (&), or (|), xor (^), xnor (~^), nand (~&), nor (~|)

Example:
  trit eval and 0.3 0.6
  trit eval '~' 0.25`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runEval,
}

var opAliases = map[string]string{
	"not":  "~",
	"and":  "&",
	"or":   "|",
	"xor":  "^",
	"xnor": "~^",
	"nand": "~&",
	"nor":  "~|",
}

func parseTrit(s string) (trit.Trit, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return trit.Lo, fmt.Errorf("invalid scalar %q: %w", s, err)
	}
	t, ok := trit.FromScalar(x)
	if !ok {
		return trit.Lo, fmt.Errorf("scalar %q outside [0, 1]", s)
	}
	return t, nil
}

func formatTrit(t trit.Trit, precision int) string {
	if t.IsCrisp() {
		return t.String()
	}
	return "z(" + strconv.FormatFloat(t.Scalar(), 'f', precision, 64) + ")"
}

func runEval(cmd *cobra.Command, args []string) error {
	op := strings.ToLower(args[0])
	if alias, ok := opAliases[op]; ok {
		op = alias
	}

	a, err := parseTrit(args[1])
	if err != nil {
		return err
	}

	var result trit.Trit
	if op == "~" {
		if len(args) != 2 {
			return fmt.Errorf("%s takes one operand", args[0])
		}
		result = a.UnaryOp('~')
		fmt.Fprintf(cmd.OutOrStdout(), "~%s = %s\n",
			formatTrit(a, cfg.Output.Precision), formatTrit(result, cfg.Output.Precision))
	} else {
		if len(args) != 3 {
			return fmt.Errorf("%s takes two operands", args[0])
		}
		b, err := parseTrit(args[2])
		if err != nil {
			return err
		}
		if result, err = a.BinaryOp(op, b); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s = %s\n",
			formatTrit(a, cfg.Output.Precision), op, formatTrit(b, cfg.Output.Precision),
			formatTrit(result, cfg.Output.Precision))
	}

	logger.Debug("evaluated", zap.String("op", op), zap.Stringer("result", result))

	if cfg.Output.Predicates {
		fmt.Fprintf(cmd.OutOrStdout(), "doubt=%t assume=%t round=%t\n",
			result.Doubt(), result.Assume(), result.Round())
	}
	return nil
}
