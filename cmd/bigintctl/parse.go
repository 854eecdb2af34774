package main

import (
	"fmt"

	"github.com/edadma/bigint"
)

// parseOperand parses a single argument in the --base numeric base,
// wrapping FromString's error with the argument's position for a
// friendlier command-line diagnostic.
func parseOperand(name, s string) (bigint.BigInt, error) {
	v, err := bigint.FromString(s, base)
	if err != nil {
		return bigint.BigInt{}, fmt.Errorf("%s %q: %w", name, s, err)
	}
	return v, nil
}

func parseOperands(args []string) ([]bigint.BigInt, error) {
	out := make([]bigint.BigInt, len(args))
	for i, a := range args {
		v, err := parseOperand(fmt.Sprintf("operand %d", i+1), a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
