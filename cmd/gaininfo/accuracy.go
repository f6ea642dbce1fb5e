package main

import (
	"context"
	"io"
	"math"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gain/dsp/gain"
)

const (
	sweepFromDB    = -100.0
	sweepToDB      = 100.0
	sweepStepDB    = 0.05
	sweepMinRatio  = 0.001
	sweepMaxRatio  = 1000.0
	sweepRatioStep = 1.001
)

// accuracyReport summarizes the error of a backend against float64 math.
type accuracyReport struct {
	Precision         string
	Points            int
	MaxRatioRelErr    float64
	MeanRatioRelErr   float64
	MaxDBAbsErr       float64
	MeanDBAbsErr      float64
	MaxRoundTripAbsDB float64
}

func accuracyCommand() *cli.Command {
	return &cli.Command{
		Name:  "accuracy",
		Usage: "Measure conversion error against float64 math over -100..100 dB",
		Flags: []cli.Flag{
			precisionFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			conv, err := converterFromFlags(cmd)
			if err != nil {
				return err
			}

			return printReport(os.Stdout, measureAccuracy(conv), cmd.String("format"))
		},
	}
}

func measureAccuracy(conv *gain.Converter) accuracyReport {
	var ratioErrs, roundTrip []float64

	for db := sweepFromDB; db <= sweepToDB; db += sweepStepDB {
		in := float32(db)
		exact := math.Pow(10, float64(in)/20)
		ratio := conv.DBToRatio(in)

		ratioErrs = append(ratioErrs, math.Abs(float64(ratio)-exact)/exact)
		roundTrip = append(roundTrip, math.Abs(float64(conv.RatioToDB(ratio)-in)))
	}

	var dbErrs []float64

	for r := sweepMinRatio; r <= sweepMaxRatio; r *= sweepRatioStep {
		in := float32(r)
		exact := 20 * math.Log10(float64(in))

		dbErrs = append(dbErrs, math.Abs(float64(conv.RatioToDB(in))-exact))
	}

	return accuracyReport{
		Precision:         conv.Precision().String(),
		Points:            len(ratioErrs) + len(dbErrs),
		MaxRatioRelErr:    floats.Max(ratioErrs),
		MeanRatioRelErr:   stat.Mean(ratioErrs, nil),
		MaxDBAbsErr:       floats.Max(dbErrs),
		MeanDBAbsErr:      stat.Mean(dbErrs, nil),
		MaxRoundTripAbsDB: floats.Max(roundTrip),
	}
}

func printReport(w io.Writer, report accuracyReport, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: "precision " + report.Precision,
		Meta: map[string]any{
			"points":                report.Points,
			"ratio max rel error":   report.MaxRatioRelErr,
			"ratio mean rel error":  report.MeanRatioRelErr,
			"dB max abs error":      report.MaxDBAbsErr,
			"dB mean abs error":     report.MeanDBAbsErr,
			"round trip max abs dB": report.MaxRoundTripAbsDB,
		},
	}

	return formatter.PrintAll([]*format.Data{data}, w)
}
