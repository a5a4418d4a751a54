package tax

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// IVARate is the Colombian VAT rate (19%).
const IVARate = 0.19

// SiigoTaxIDIVA19 is the id of the 19% IVA tax configured in Siigo.
const SiigoTaxIDIVA19 = 2929

var (
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 1")
)

// Calculation is the result of a VAT split.
type Calculation struct {
	BasePrice  float64 `json:"base_price"`
	TaxAmount  float64 `json:"tax_amount"`
	TotalPrice float64 `json:"total_price"`
	TaxRate    float64 `json:"tax_rate"`
}

// Line is a tax entry in the shape Siigo expects on invoice items.
type Line struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Value      float64 `json:"value"`
}

// FromFinalPrice splits a tax-inclusive final price into base + VAT.
//
// base = final / (1 + rate); tax = final - base. Both rounded to 2 decimals.
func FromFinalPrice(finalPrice, taxRate float64) (Calculation, error) {
	if finalPrice < 0 {
		return Calculation{}, ErrNegativePrice
	}
	if taxRate < 0 || taxRate > 1 {
		return Calculation{}, ErrInvalidTaxRate
	}

	basePrice := finalPrice / (1 + taxRate)
	taxAmount := finalPrice - basePrice

	return Calculation{
		BasePrice:  round2(basePrice),
		TaxAmount:  round2(taxAmount),
		TotalPrice: finalPrice,
		TaxRate:    taxRate,
	}, nil
}

// FromBasePrice computes VAT and total from a tax-exclusive base price.
func FromBasePrice(basePrice, taxRate float64) (Calculation, error) {
	if basePrice < 0 {
		return Calculation{}, ErrNegativePrice
	}
	if taxRate < 0 || taxRate > 1 {
		return Calculation{}, ErrInvalidTaxRate
	}

	taxAmount := basePrice * taxRate

	return Calculation{
		BasePrice:  basePrice,
		TaxAmount:  round2(taxAmount),
		TotalPrice: round2(basePrice + taxAmount),
		TaxRate:    taxRate,
	}, nil
}

// SiigoTaxLines builds the taxes array for a Siigo invoice item from a
// tax-inclusive final price. The mainline invoice path sends an empty
// taxes list (VAT lives on the Siigo product); this is for accounts that
// bill with explicit IVA lines.
func SiigoTaxLines(finalPrice float64) ([]Line, error) {
	calc, err := FromFinalPrice(finalPrice, IVARate)
	if err != nil {
		return nil, err
	}
	return []Line{
		{ID: SiigoTaxIDIVA19, Name: "IVA", Percentage: 19, Value: calc.TaxAmount},
	}, nil
}

// FormatCOP formats a value as Colombian pesos, e.g. "$10.000".
func FormatCOP(value float64) string {
	n := int64(math.Round(value))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
