package pricing

import (
	"math"

	"darimaids/models"
)

// inputs are the parsed numeric fields of a draft.
type inputs struct {
	cleaningType string

	sqft    float64
	hasSqft bool

	bedrooms    int
	hasBedrooms bool

	bathrooms    int
	hasBathrooms bool
}

func parseInputs(d *models.BookingDraft) inputs {
	in := inputs{cleaningType: d.CleaningType}
	in.sqft, in.hasSqft = parseFloat(d.SquareFootage)
	in.bedrooms, in.hasBedrooms = parseInt(d.Bedrooms)
	in.bathrooms, in.hasBathrooms = parseInt(d.Bathrooms)
	return in
}

type baseStrategy func(in inputs) float64

// sizeTable prices the fixed tiers; the over-1500 tier is
// max(floor, sqft*rate) and needs a square footage.
type sizeTable struct {
	tiers map[string]float64
	floor float64
	rate  float64
}

func (t sizeTable) price(in inputs) float64 {
	if in.cleaningType == models.Cleaning1500SqftPlus {
		if !in.hasSqft {
			return 0
		}
		return math.Max(t.floor, in.sqft*t.rate)
	}
	return t.tiers[in.cleaningType]
}

var standardTable = sizeTable{
	tiers: map[string]float64{
		models.CleaningStudio:    130,
		models.Cleaning2Bed1Bath: 180,
		models.Cleaning2Bed2Bath: 230,
		models.Cleaning3Bed2Bath: 290,
	},
	floor: 290,
	rate:  0.18,
}

var moveInOutTable = sizeTable{
	tiers: map[string]float64{
		models.CleaningStudio:    250,
		models.Cleaning2Bed1Bath: 290,
		models.Cleaning2Bed2Bath: 325,
		models.Cleaning3Bed2Bath: 350,
	},
	floor: 350,
	rate:  0.3,
}

func deepCleaning(in inputs) float64 {
	if !in.hasSqft {
		return 0
	}
	return in.sqft * 0.23
}

func whiteGlove(in inputs) float64 {
	base := 200.0
	if in.hasBedrooms {
		base += float64(in.bedrooms-1) * 50
	}
	if in.hasBathrooms {
		base += float64(in.bathrooms-1) * 50
	}
	if in.hasSqft && in.sqft > 2000 {
		base = math.Max(base, in.sqft*0.2)
	}
	return base
}

func airbnbTurnover(in inputs) float64 {
	base := 140.0
	if in.hasBedrooms && in.bedrooms > 1 {
		base += float64(in.bedrooms-1) * 40
	}
	if in.hasBathrooms && in.bathrooms > 1 {
		base += float64(in.bathrooms-1) * 40
	}
	if in.hasSqft && in.sqft > 1200 {
		base = math.Max(base, in.sqft*0.23)
	}
	return base
}

func customClean(inputs) float64 { return 130 }

var baseStrategies = map[string]baseStrategy{
	models.ServiceStandardCleaning: standardTable.price,
	models.ServiceDeepCleaning:     deepCleaning,
	models.ServiceMoveInOut:        moveInOutTable.price,
	models.ServiceWhiteGlove:       whiteGlove,
	models.ServiceAirbnbTurnover:   airbnbTurnover,
	models.ServiceCustomClean:      customClean,
}

// discountRates apply to the base price only.
var discountRates = map[string]float64{
	models.ReoccurrenceWeekly:   0.15,
	models.ReoccurrenceBiWeekly: 0.10,
	models.ReoccurrenceMonthly:  0.05,
}

// BasePrice returns 0 for an unknown or unset service type.
func BasePrice(d *models.BookingDraft) float64 {
	strategy, ok := baseStrategies[d.ServiceType]
	if !ok {
		return 0
	}
	return strategy(parseInputs(d))
}

func AddonsPrice(addons []string) float64 {
	return float64(len(addons)) * models.AddOnUnitPrice
}

// DiscountRate is 0 for one-time or unset recurrence.
func DiscountRate(reoccurrence string) float64 {
	return discountRates[reoccurrence]
}

// Compute prices the draft and stores the total on it.
func Compute(d *models.BookingDraft) models.PricingBreakdown {
	b := Quote(d)
	d.TotalPrice = b.TotalPrice
	return b
}

// Quote prices the draft without touching it.
func Quote(d *models.BookingDraft) models.PricingBreakdown {
	base := BasePrice(d)
	addons := AddonsPrice(d.SelectedAddons)
	discount := base * DiscountRate(d.Reoccurrence)
	return models.PricingBreakdown{
		BasePrice:      base,
		AddonsPrice:    addons,
		DiscountAmount: discount,
		TotalPrice:     base + addons - discount,
	}
}
