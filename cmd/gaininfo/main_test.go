package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"lukechampine.com/uint128"

	"github.com/cwbudde/algo-gain/dsp/convert"
	"github.com/cwbudde/algo-gain/dsp/gain"
)

func newConverter(t *testing.T, p gain.Precision) *gain.Converter {
	t.Helper()

	conv, err := gain.New(gain.WithPrecision(p))
	if err != nil {
		t.Fatalf("gain.New() error = %v", err)
	}

	return conv
}

func TestDBRange(t *testing.T) {
	dbs, err := dbRange(-60, 0, 20)
	if err != nil {
		t.Fatalf("dbRange() error = %v", err)
	}

	want := []float32{-60, -40, -20, 0}
	if len(dbs) != len(want) {
		t.Fatalf("len = %d, want %d", len(dbs), len(want))
	}

	for i := range want {
		if dbs[i] != want[i] {
			t.Fatalf("dbs[%d] = %v, want %v", i, dbs[i], want[i])
		}
	}
}

func TestDBRangeInvalid(t *testing.T) {
	for _, tt := range []struct{ from, to, step float64 }{
		{0, 10, 0},
		{0, 10, -1},
		{10, 0, 1},
		{0, 10, math.NaN()},
	} {
		if _, err := dbRange(tt.from, tt.to, tt.step); !errors.Is(err, errInvalidRange) {
			t.Errorf("dbRange(%v, %v, %v) error = %v, want errInvalidRange", tt.from, tt.to, tt.step, err)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer

	if err := printTable(&out, newConverter(t, gain.PrecisionFast), []float32{-6, 0, 6}); err != nil {
		t.Fatalf("printTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}

	if !strings.HasPrefix(lines[3], "0.00") {
		t.Fatalf("unexpected unity row %q", lines[3])
	}
}

func TestMeasureAccuracyFast(t *testing.T) {
	report := measureAccuracy(newConverter(t, gain.PrecisionFast))

	if report.Precision != "fast" {
		t.Fatalf("Precision = %q, want fast", report.Precision)
	}

	if report.Points == 0 {
		t.Fatal("no points measured")
	}

	if report.MaxRatioRelErr > 2e-4 {
		t.Errorf("MaxRatioRelErr = %g", report.MaxRatioRelErr)
	}

	if report.MeanRatioRelErr > report.MaxRatioRelErr {
		t.Errorf("mean %g exceeds max %g", report.MeanRatioRelErr, report.MaxRatioRelErr)
	}

	if report.MaxDBAbsErr > 2e-3 {
		t.Errorf("MaxDBAbsErr = %g", report.MaxDBAbsErr)
	}

	if report.MaxRoundTripAbsDB > 5e-3 {
		t.Errorf("MaxRoundTripAbsDB = %g", report.MaxRoundTripAbsDB)
	}
}

func TestMeasureAccuracyExactBeatsFast(t *testing.T) {
	fast := measureAccuracy(newConverter(t, gain.PrecisionFast))
	exact := measureAccuracy(newConverter(t, gain.PrecisionExact))

	if exact.MaxRatioRelErr >= fast.MaxRatioRelErr {
		t.Fatalf("exact max error %g not below fast %g", exact.MaxRatioRelErr, fast.MaxRatioRelErr)
	}
}

func TestPrintReportUnknownFormat(t *testing.T) {
	report := accuracyReport{Precision: "fast"}
	if err := printReport(&bytes.Buffer{}, report, "yaml-but-not-really"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestPrintReportJSON(t *testing.T) {
	var out bytes.Buffer

	report := measureAccuracy(newConverter(t, gain.PrecisionExact))
	if err := printReport(&out, report, "json"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("expected report output")
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		typeName string
		text     string
		want     float32
	}{
		{typeName: "float64", text: "1e308", want: convert.MaxFloat32},
		{typeName: "float64", text: "-1e400", want: convert.MinFloat32},
		{typeName: "float64", text: "0.5", want: 0.5},
		{typeName: "uint32", text: "4294967295", want: 4294967296},
		{typeName: "uint64", text: "18446744073709551615", want: 18446744073709551616},
		{typeName: "int64", text: "-9223372036854775808", want: -9223372036854775808},
		{typeName: "uint", text: "0", want: 0},
		{typeName: "uint128", text: "340282366920938463463374607431768211455", want: convert.MaxFloat32},
		{typeName: "uint128", text: "0x10000000000000000", want: 0x1p64},
		{typeName: "uint128", text: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.text, func(t *testing.T) {
			src, err := parseSource(tt.typeName, tt.text)
			if err != nil {
				t.Fatalf("parseSource() error = %v", err)
			}

			if got := src.Float32Lossy(); got != tt.want {
				t.Fatalf("Float32Lossy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUint128(t *testing.T) {
	tests := []struct {
		text string
		want uint128.Uint128
	}{
		{text: "0", want: uint128.Uint128{}},
		{text: "18446744073709551621", want: uint128.Uint128{Lo: 5, Hi: 1}},
		{text: "0xffffff0000000000ffffffffffffffff", want: uint128.Uint128{Lo: math.MaxUint64, Hi: 0xffffff0000000000}},
		{text: "340282366920938463463374607431768211455", want: uint128.Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}},
	}

	for _, tt := range tests {
		got, err := parseUint128(tt.text)
		if err != nil {
			t.Fatalf("parseUint128(%q) error = %v", tt.text, err)
		}

		if got != tt.want {
			t.Fatalf("parseUint128(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestParseSourceErrors(t *testing.T) {
	if _, err := parseSource("int8", "1"); !errors.Is(err, errUnknownType) {
		t.Errorf("error = %v, want errUnknownType", err)
	}

	if _, err := parseSource("uint128", "-1"); !errors.Is(err, errOutOfRange) {
		t.Errorf("error = %v, want errOutOfRange", err)
	}

	if _, err := parseSource("uint128", "340282366920938463463374607431768211456"); !errors.Is(err, errOutOfRange) {
		t.Errorf("error = %v, want errOutOfRange", err)
	}

	if _, err := parseSource("uint32", "4294967296"); err == nil {
		t.Error("expected error for uint32 overflow")
	}

	if _, err := parseSource("float64", "loud"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestPrintConversion(t *testing.T) {
	var out bytes.Buffer

	if err := printConversion(&out, convert.Of(1e308)); err != nil {
		t.Fatalf("printConversion() error = %v", err)
	}

	if !strings.Contains(out.String(), "saturated at max") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
