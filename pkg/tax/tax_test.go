package tax

import (
	"math"
	"math/rand"
	"testing"
)

func TestFromFinalPrice(t *testing.T) {
	t.Run("known split at 19%", func(t *testing.T) {
		calc, err := FromFinalPrice(10000, 0.19)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calc.BasePrice != 8403.36 {
			t.Fatalf("expected base 8403.36, got %v", calc.BasePrice)
		}
		if calc.TaxAmount != 1596.64 {
			t.Fatalf("expected tax 1596.64, got %v", calc.TaxAmount)
		}
		if calc.TotalPrice != 10000 {
			t.Fatalf("expected total 10000, got %v", calc.TotalPrice)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		calc, err := FromFinalPrice(0, 0.19)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calc.BasePrice != 0 || calc.TaxAmount != 0 {
			t.Fatalf("expected zero split, got %+v", calc)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		if _, err := FromFinalPrice(-1, 0.19); err != ErrNegativePrice {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("rate out of range", func(t *testing.T) {
		if _, err := FromFinalPrice(100, -0.1); err != ErrInvalidTaxRate {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
		if _, err := FromFinalPrice(100, 1.5); err != ErrInvalidTaxRate {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})
}

func TestFromBasePrice(t *testing.T) {
	calc, err := FromBasePrice(8403.36, 0.19)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(calc.TotalPrice-10000) > 0.01 {
		t.Fatalf("expected total ~10000, got %v", calc.TotalPrice)
	}
	if math.Abs(calc.TaxAmount-1596.64) > 0.01 {
		t.Fatalf("expected tax ~1596.64, got %v", calc.TaxAmount)
	}
}

// Splitting a final price and rebuilding it from the base must return the
// original amount within rounding error, for any price and rate.
func TestRoundTripConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		finalPrice := math.Round(rng.Float64()*1_000_000*100) / 100
		rate := math.Round(rng.Float64()*100) / 100

		fromFinal, err := FromFinalPrice(finalPrice, rate)
		if err != nil {
			t.Fatalf("FromFinalPrice(%v, %v): %v", finalPrice, rate, err)
		}

		fromBase, err := FromBasePrice(fromFinal.BasePrice, rate)
		if err != nil {
			t.Fatalf("FromBasePrice(%v, %v): %v", fromFinal.BasePrice, rate, err)
		}

		// Two roundings (base, then total), so allow a cent each way.
		if math.Abs(fromBase.TotalPrice-finalPrice) > 0.02 {
			t.Fatalf("round trip drifted: final=%v rate=%v rebuilt=%v", finalPrice, rate, fromBase.TotalPrice)
		}
		if math.Abs((fromFinal.BasePrice+fromFinal.TaxAmount)-finalPrice) > 0.02 {
			t.Fatalf("base+tax != final: final=%v rate=%v base=%v tax=%v", finalPrice, rate, fromFinal.BasePrice, fromFinal.TaxAmount)
		}
	}
}

func TestSiigoTaxLines(t *testing.T) {
	lines, err := SiigoTaxLines(10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 tax line, got %d", len(lines))
	}
	if lines[0].ID != SiigoTaxIDIVA19 || lines[0].Percentage != 19 {
		t.Fatalf("unexpected tax line: %+v", lines[0])
	}
	if lines[0].Value != 1596.64 {
		t.Fatalf("expected IVA 1596.64, got %v", lines[0].Value)
	}
}

func TestFormatCOP(t *testing.T) {
	cases := map[float64]string{
		0:        "$0",
		999:      "$999",
		10000:    "$10.000",
		30000:    "$30.000",
		1234567:  "$1.234.567",
		-80000:   "-$80.000",
		40000.49: "$40.000",
	}
	for in, want := range cases {
		if got := FormatCOP(in); got != want {
			t.Errorf("FormatCOP(%v) = %q, want %q", in, got, want)
		}
	}
}
