package main

import (
	"os"

	"github.com/spf13/cobra"
)

// bigintctl is a calculator CLI exercising the bigint package end to end
// (§12 supplemented feature), generalizing the original library's main.c
// smoke test into a proper command per subcommand.
var rootCmd = &cobra.Command{
	Use:   "bigintctl",
	Short: "Arbitrary-precision integer calculator",
}

var base int

func main() {
	rootCmd.PersistentFlags().IntVar(&base, "base", 10, "numeric base (2-36) for parsing and printing operands")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(powCmd)
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(lcmCmd)
	rootCmd.AddCommand(sqrtCmd)
	rootCmd.AddCommand(isPrimeCmd)
	rootCmd.AddCommand(nextPrimeCmd)
	rootCmd.AddCommand(modPowCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
