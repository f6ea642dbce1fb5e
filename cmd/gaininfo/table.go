package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-gain/dsp/gain"
)

var errInvalidRange = errors.New("invalid range")

func tableCommand() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Print a decibel to ratio table",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "from",
				Usage: "First decibel value",
				Value: -60,
			},
			&cli.FloatFlag{
				Name:  "to",
				Usage: "Last decibel value",
				Value: 20,
			},
			&cli.FloatFlag{
				Name:  "step",
				Usage: "Decibel increment",
				Value: 6,
			},
			precisionFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			conv, err := converterFromFlags(cmd)
			if err != nil {
				return err
			}

			dbs, err := dbRange(cmd.Float("from"), cmd.Float("to"), cmd.Float("step"))
			if err != nil {
				return err
			}

			return printTable(os.Stdout, conv, dbs)
		},
	}
}

func dbRange(from, to, step float64) ([]float32, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: step must be positive: %v", errInvalidRange, step)
	}

	if to < from {
		return nil, fmt.Errorf("%w: to (%v) is below from (%v)", errInvalidRange, to, from)
	}

	count := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float32, count)

	for i := range out {
		out[i] = float32(from + step*float64(i))
	}

	return out, nil
}

func printTable(w io.Writer, conv *gain.Converter, dbs []float32) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "dB\tRatio\tExact Ratio\tRel Err\tRound Trip [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "--\t-----\t-----------\t-------\t---------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, db := range dbs {
		ratio := conv.DBToRatio(db)
		exact := math.Pow(10, float64(db)/20)
		relErr := math.Abs(float64(ratio)-exact) / exact

		if _, err := fmt.Fprintf(tw, "%.2f\t%.6g\t%.6g\t%.2e\t%.4f\n",
			db,
			ratio,
			exact,
			relErr,
			conv.RatioToDB(ratio),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
