package main

import (
	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-gain/dsp/gain"
)

func precisionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "precision",
		Aliases: []string{"p"},
		Usage:   "Math backend: fast, approx, exact",
		Value:   gain.PrecisionFast.String(),
	}
}

func converterFromFlags(cmd *cli.Command) (*gain.Converter, error) {
	precision, err := gain.ParsePrecision(cmd.String("precision"))
	if err != nil {
		return nil, err
	}

	return gain.New(gain.WithPrecision(precision))
}
