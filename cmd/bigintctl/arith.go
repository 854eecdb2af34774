package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edadma/bigint"
)

func binaryCmd(use, short string, op func(a, b bigint.BigInt) bigint.BigInt) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op(ops[0], ops[1]).Text(base))
			return nil
		},
	}
}

var addCmd = binaryCmd("add", "Add two integers", func(a, b bigint.BigInt) bigint.BigInt { return a.Add(b) })
var subCmd = binaryCmd("sub", "Subtract two integers", func(a, b bigint.BigInt) bigint.BigInt { return a.Sub(b) })
var mulCmd = binaryCmd("mul", "Multiply two integers", func(a, b bigint.BigInt) bigint.BigInt { return a.Mul(b) })
var divCmd = binaryCmd("div", "Truncated division of two integers", func(a, b bigint.BigInt) bigint.BigInt { return a.Divide(b) })
var modCmd = binaryCmd("mod", "Truncated remainder of two integers", func(a, b bigint.BigInt) bigint.BigInt { return a.Mod(b) })
var gcdCmd = binaryCmd("gcd", "Greatest common divisor of two integers", bigint.GCD)
var lcmCmd = binaryCmd("lcm", "Least common multiple of two integers", bigint.LCM)

var powCmd = &cobra.Command{
	Use:   "pow <base> <exponent>",
	Short: "Raise an integer to a non-negative power",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseOperand("base", args[0])
		if err != nil {
			return err
		}
		exp, err := parseOperand("exponent", args[1])
		if err != nil {
			return err
		}
		e, ok := exp.ToUint32()
		if !ok {
			return fmt.Errorf("exponent %q does not fit in a uint32", args[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), b.Pow(e).Text(base))
		return nil
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <n>",
	Short: "Integer square root (floor)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseOperand("operand", args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), bigint.Sqrt(n).Text(base))
		return nil
	},
}

var isPrimeCmd = &cobra.Command{
	Use:   "isprime <n>",
	Short: "Report whether an integer is prime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseOperand("operand", args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), bigint.IsPrime(n, 0))
		return nil
	},
}

var nextPrimeCmd = &cobra.Command{
	Use:   "nextprime <n>",
	Short: "Next prime at or above n (an even n, including 2, starts from n+1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseOperand("operand", args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), bigint.NextPrime(n).Text(base))
		return nil
	},
}

var modPowCmd = &cobra.Command{
	Use:   "modpow <base> <exponent> <modulus>",
	Short: "Modular exponentiation",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := parseOperands(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), bigint.ModPow(ops[0], ops[1], ops[2]).Text(base))
		return nil
	},
}
