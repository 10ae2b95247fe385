package billing

import "math"

// Default rates. A deployment can override them through config; the
// zero-value Calculator falls back to these.
const (
	DefaultTaxRate     = 0.05
	DefaultServiceRate = 0.10
)

// Line is one priced cart or order line.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals is the bill breakdown for a set of lines. Values keep full
// float precision; rounding happens only at display time.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"gst_amount"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total_amount"`
}

// Calculator computes bill totals. Tax applies to every order; the
// service charge only to dine-in.
type Calculator struct {
	TaxRate     float64
	ServiceRate float64

	// configured marks the rates as explicitly chosen, so a deployment
	// may set either to zero. The zero-value Calculator uses the
	// defaults.
	configured bool
}

func NewCalculator(taxRate, serviceRate float64) Calculator {
	return Calculator{TaxRate: taxRate, ServiceRate: serviceRate, configured: true}
}

// EffectiveTaxRate and EffectiveServiceRate resolve the zero-value
// Calculator to the default rates.

func (c Calculator) EffectiveTaxRate() float64 {
	if !c.configured && c.TaxRate == 0 && c.ServiceRate == 0 {
		return DefaultTaxRate
	}
	return c.TaxRate
}

func (c Calculator) EffectiveServiceRate() float64 {
	if !c.configured && c.TaxRate == 0 && c.ServiceRate == 0 {
		return DefaultServiceRate
	}
	return c.ServiceRate
}

// Compute derives the bill for lines. dineIn switches the service
// charge on. An empty line set yields all zeros.
func (c Calculator) Compute(lines []Line, dineIn bool) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.UnitPrice * float64(l.Quantity)
	}
	t.Tax = t.Subtotal * c.EffectiveTaxRate()
	if dineIn {
		t.ServiceCharge = t.Subtotal * c.EffectiveServiceRate()
	}
	t.Total = t.Subtotal + t.Tax + t.ServiceCharge
	return t
}

// Compute derives the bill with the default rates.
func Compute(lines []Line, dineIn bool) Totals {
	return Calculator{}.Compute(lines, dineIn)
}

// Round2 rounds a monetary value to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
