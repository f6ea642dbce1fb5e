package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"lukechampine.com/uint128"

	"github.com/cwbudde/algo-gain/dsp/convert"
)

var (
	errInvalidArgCount = errors.New("expected exactly one numeric argument")
	errUnknownType     = errors.New("unknown source type")
	errOutOfRange      = errors.New("value out of range")
)

var sourceTypes = []string{"float64", "uint32", "uint64", "int64", "uint", "uint128"}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a number to a saturated float32",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Source type: float64, uint32, uint64, int64, uint, uint128",
				Value:   "float64",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
			}

			src, err := parseSource(cmd.String("type"), cmd.Args().First())
			if err != nil {
				return err
			}

			return printConversion(os.Stdout, src)
		},
	}
}

func parseSource(typeName, text string) (convert.Lossy, error) {
	switch typeName {
	case "float64":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return convert.Of(v), nil
	case "uint32":
		v, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			return nil, err
		}
		return convert.Of(uint32(v)), nil
	case "uint64":
		v, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return nil, err
		}
		return convert.Of(v), nil
	case "int64":
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, err
		}
		return convert.Of(v), nil
	case "uint":
		v, err := strconv.ParseUint(text, 0, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return convert.Of(uint(v)), nil
	case "uint128":
		v, err := parseUint128(text)
		if err != nil {
			return nil, err
		}
		return convert.Wide(v), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", errUnknownType, typeName, sourceTypes)
	}
}

func parseUint128(text string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return uint128.Uint128{}, fmt.Errorf("%w: %q is not an integer", strconv.ErrSyntax, text)
	}

	if n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Uint128{}, fmt.Errorf("%w: %s does not fit in 128 bits", errOutOfRange, text)
	}

	return uint128.FromBig(n), nil
}

func printConversion(w io.Writer, src convert.Lossy) error {
	got := src.Float32Lossy()

	var note string

	switch got {
	case convert.MaxFloat32:
		note = " (saturated at max)"
	case convert.MinFloat32:
		note = " (saturated at min)"
	}

	if _, err := fmt.Fprintf(w, "%g%s\n", got, note); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
