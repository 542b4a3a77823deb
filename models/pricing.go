package models

import "fmt"

// PricingBreakdown is derived from a draft on every change; it is not stored.
type PricingBreakdown struct {
	BasePrice      float64 `json:"basePrice"`
	AddonsPrice    float64 `json:"addonsPrice"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalPrice     float64 `json:"totalPrice"`
}

// FormattedBreakdown is the two-decimal display form.
type FormattedBreakdown struct {
	BasePrice      string `json:"basePrice"`
	AddonsPrice    string `json:"addonsPrice"`
	DiscountAmount string `json:"discountAmount"`
	TotalPrice     string `json:"totalPrice"`
}

// FormatMoney renders a price the way the summary shows it.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func (b PricingBreakdown) Format() FormattedBreakdown {
	return FormattedBreakdown{
		BasePrice:      FormatMoney(b.BasePrice),
		AddonsPrice:    FormatMoney(b.AddonsPrice),
		DiscountAmount: FormatMoney(b.DiscountAmount),
		TotalPrice:     FormatMoney(b.TotalPrice),
	}
}
