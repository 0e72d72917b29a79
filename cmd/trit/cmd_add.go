package main

import (
	"fmt"
	"strconv"

	"github.com/ndrego/trit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add [x] [y]",
	Short: "Add two bytes with the ripple-carry trit adder",
	Long: `Converts two integers in 0..255 to trit bytes and adds them with the
8-position ripple-carry adder. The sum wraps; the carry out is printed.

Example:
  trit add 200 100`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func parseByte(s string) (trit.TritByte, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return trit.TritByte{}, fmt.Errorf("invalid byte %q: %w", s, err)
	}
	return trit.ByteFromUint8(uint8(n)), nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	x, err := parseByte(args[0])
	if err != nil {
		return err
	}
	y, err := parseByte(args[1])
	if err != nil {
		return err
	}

	sum, carry := trit.ByteFullAdd(x, y)
	logger.Debug("added", zap.Stringer("x", x), zap.Stringer("y", y),
		zap.Stringer("sum", sum), zap.Stringer("carry", carry))

	xv, _ := x.Uint8()
	yv, _ := y.Uint8()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s (%d)\n", x, xv)
	fmt.Fprintf(out, "+ %s (%d)\n", y, yv)
	fmt.Fprintf(out, "= %s (%d) carry %s\n", sum, sum.Rounded(), carry)
	return nil
}
