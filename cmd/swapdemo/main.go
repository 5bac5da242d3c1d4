package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swantron/funcdemo/internal/cli"
	"github.com/swantron/funcdemo/internal/swap"
	"github.com/swantron/funcdemo/pkg/report"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "swapdemo",
		Short: "Swap integers by value and by reference",
		Long: `Swapdemo starts from a=4, b=5, c=6. It swaps a and b by value,
which leaves them untouched, then swaps b and c through pointers.
It prints c - a - b over the final values.`,
		Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwap(cmd, configFile)
		},
	}

	cli.AddCommonFlags(cmd, &configFile)
	ops := swap.DefaultOperands()
	cmd.Flags().IntP("a", "a", ops.A, "Initial value of a")
	cmd.Flags().IntP("b", "b", ops.B, "Initial value of b")
	cmd.Flags().IntP("c", "c", ops.C, "Initial value of c")

	return cmd
}

func runSwap(cmd *cobra.Command, configFile string) error {
	cfg, logger, err := cli.Setup(cmd, configFile)
	if err != nil {
		return err
	}

	ops := cfg.Operands()
	logger.Debug("starting swap demonstration", "a", ops.A, "b", ops.B, "c", ops.C)

	result := swap.Run(ops)
	for _, step := range result.Steps {
		logger.Debug("swap step",
			"call", step.Call,
			"a", step.After.A,
			"b", step.After.B,
			"c", step.After.C)
	}
	logger.Debug("combined final operands", "expr", "c - a - b", "value", result.Value)

	return report.Write(cmd.OutOrStdout(), cfg.Format(), report.NewSwapReport(result))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
