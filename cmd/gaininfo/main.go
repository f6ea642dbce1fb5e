// Command gaininfo inspects the decibel/ratio conversions and the saturating
// float32 conversion.
//
// Usage:
//
//	gaininfo table [--from -60] [--to 20] [--step 6] [--precision fast]
//	gaininfo accuracy [--precision fast] [--format console]
//	gaininfo convert --type uint128 340282366920938463463374607431768211455
//
// Examples:
//
//	gaininfo table --from -96 --to 0 --step 12
//	gaininfo accuracy --precision approx --format json
//	gaininfo convert --type float64 1e308
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:  "gaininfo",
		Usage: "Inspect gain and sample conversions",
		Commands: []*cli.Command{
			tableCommand(),
			accuracyCommand(),
			convertCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
