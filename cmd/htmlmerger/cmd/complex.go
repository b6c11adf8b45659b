package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Advestis/htmlmerger/mathx"
)

var (
	complexOp    string
	complexRound int
	complexRepr  string
)

var complexCmd = &cobra.Command{
	Use:   "complex <literal> [literal]",
	Short: "Parse, format and combine complex number literals",
	Long: `Complex parses textual complex literals such as "3+4i", "5e^0.9i" or
"2*(cos(0.5) + isin(0.5))" and prints the value in all three representations.
With two literals and --op the operands are combined first; a second literal
that reads as a plain real is treated as a scalar.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runComplex,
}

func init() {
	complexCmd.Flags().StringVar(&complexOp, "op", "add", "operation for two operands (add, sub, mul, div, pow)")
	complexCmd.Flags().IntVar(&complexRound, "round", -1, "round the result to n decimals")
	complexCmd.Flags().StringVar(&complexRepr, "repr", string(mathx.Cartesian), "representation to print (cartesian, trigo, exp)")
	rootCmd.AddCommand(complexCmd)
}

// operand builds an arithmetic operand from a CLI argument: plain reals
// become scalars, everything else stays a textual complex literal
func operand(arg string) mathx.Operand {
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return mathx.Real(v)
	}
	return mathx.Text(arg)
}

func runComplex(cmd *cobra.Command, args []string) error {
	z, err := mathx.Parse(args[0])
	if err != nil {
		logger.LogError(err)
		return err
	}

	if len(args) == 2 {
		x, y := mathx.Value(z), operand(args[1])
		switch complexOp {
		case "add":
			z, err = mathx.Add(x, y)
		case "sub":
			z, err = mathx.Sub(x, y)
		case "mul":
			z, err = mathx.Mul(x, y)
		case "div":
			z, err = mathx.Div(x, y)
		case "pow":
			z, err = mathx.Pow(x, y)
		default:
			err = fmt.Errorf("unknown operation: %s", complexOp)
		}
		if err != nil {
			logger.LogError(err)
			return err
		}
	}

	repres := mathx.Representation(complexRepr)
	if complexRound >= 0 {
		z, err = z.Round(complexRound, repres)
		if err != nil {
			logger.LogError(err)
			return err
		}
	}

	human, err := z.ToString(repres)
	if err != nil {
		logger.LogError(err)
		return err
	}
	machine, err := z.ToRepr(repres)
	if err != nil {
		logger.LogError(err)
		return err
	}
	latex, err := z.ToLaTeX(repres)
	if err != nil {
		logger.LogError(err)
		return err
	}

	fmt.Println(resultStyle.Render(human))
	fmt.Printf("%s %s\n", labelStyle.Render("repr: "), machine)
	fmt.Printf("%s %s\n", labelStyle.Render("latex:"), latex)
	fmt.Printf("%s %s\n", labelStyle.Render("polar:"),
		fmt.Sprintf("r=%v theta=%v", z.R(), z.Theta()))
	return nil
}
