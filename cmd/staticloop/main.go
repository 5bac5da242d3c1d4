package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swantron/funcdemo/internal/cli"
	"github.com/swantron/funcdemo/internal/counter"
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
		Use:   "staticloop",
		Short: "Drive a loop from a counter that keeps its state between calls",
		Long: `Staticloop runs a loop whose init, condition and post clauses each
take one value from a shared counter. The body takes a fourth value
and prints it. The counter starts at 16 and drops by one per call.
The loop stops once the condition sees zero or less.`,
		Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoop(cmd, configFile)
		},
	}

	cli.AddCommonFlags(cmd, &configFile)
	cmd.Flags().IntP("start", "s", counter.DefaultStart, "Value the counter returns on its first call")

	return cmd
}

func runLoop(cmd *cobra.Command, configFile string) error {
	cfg, logger, err := cli.Setup(cmd, configFile)
	if err != nil {
		return err
	}

	logger.Debug("starting counter loop", "start", cfg.Loop.Start)

	c := counter.New(cfg.Loop.Start)
	trace := counter.Run(c, func(call counter.Call) {
		logger.Debug("counter call", "n", c.Calls(), "site", call.Site, "value", call.Value)
	})
	logger.Debug("loop finished",
		"iterations", trace.Iterations(),
		"calls", c.Calls(),
		"counter", trace.Final)

	return report.Write(cmd.OutOrStdout(), cfg.Format(), report.NewLoopReport(trace))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
