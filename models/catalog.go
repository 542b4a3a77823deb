package models

// Option is one {value, label} entry of a selectable registry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Service types.
const (
	ServiceStandardCleaning = "standard-cleaning"
	ServiceDeepCleaning     = "deep-cleaning"
	ServiceMoveInOut        = "move-in-out"
	ServiceWhiteGlove       = "white-glove"
	ServiceAirbnbTurnover   = "airbnb-turnover"
	ServiceCustomClean      = "custom-clean"
)

// Cleaning size tiers.
const (
	CleaningStudio       = "studio"
	Cleaning2Bed1Bath    = "2-bed-1-bath"
	Cleaning2Bed2Bath    = "2-bed-2-bath"
	Cleaning3Bed2Bath    = "3-bed-2-bath"
	Cleaning1500SqftPlus = "1500-sqft-plus"
)

// Recurrence options.
const (
	ReoccurrenceOneTime  = "one-time"
	ReoccurrenceWeekly   = "weekly"
	ReoccurrenceBiWeekly = "bi-weekly"
	ReoccurrenceMonthly  = "monthly"
)

// AddOnUnitPrice is the flat fee of every selected add-on.
const AddOnUnitPrice = 25.0

var ServiceTypes = []Option{
	{Value: ServiceStandardCleaning, Label: "Standard Cleaning"},
	{Value: ServiceDeepCleaning, Label: "Deep Cleaning"},
	{Value: ServiceMoveInOut, Label: "Move In / Move Out Cleaning"},
	{Value: ServiceWhiteGlove, Label: "White Glove Cleaning"},
	{Value: ServiceAirbnbTurnover, Label: "Airbnb Turnover Cleaning"},
	{Value: ServiceCustomClean, Label: "Custom Cleaning"},
}

var CleaningTypes = []Option{
	{Value: CleaningStudio, Label: "Studio / 1 Bed - 1 Bath"},
	{Value: Cleaning2Bed1Bath, Label: "2 Bed - 1 Bath"},
	{Value: Cleaning2Bed2Bath, Label: "2 Bed - 2 Bath"},
	{Value: Cleaning3Bed2Bath, Label: "3 Bed - 2 Bath"},
	{Value: Cleaning1500SqftPlus, Label: "Over 1500 sq. ft"},
}

var ReoccurrenceOptions = []Option{
	{Value: ReoccurrenceOneTime, Label: "One-Time"},
	{Value: ReoccurrenceWeekly, Label: "Weekly"},
	{Value: ReoccurrenceBiWeekly, Label: "Bi-Weekly"},
	{Value: ReoccurrenceMonthly, Label: "Monthly"},
}

var PetOptions = []Option{
	{Value: "none", Label: "No Pets"},
	{Value: "small", Label: "Small Pets"},
	{Value: "large", Label: "Large Pets"},
}

var LastCleaningOptions = []Option{
	{Value: "1-week", Label: "1 Week Ago"},
	{Value: "1-month", Label: "1 Month Ago"},
	{Value: "3-plus-months", Label: "3+ Months Ago"},
}

var States = []string{"FL"}

var Counties = []string{"Palm Beach", "Broward", "Miami-Dade"}

var AddOns = []string{
	"Appliance Cleaning",
	"Cabinet Cleaning",
	"Grout Scrubbing",
	"Window Cleaning",
	"Linen Service",
	"Laundry",
	"Balcony/Patio",
	"Toaster/Oven",
	"Inside Fridge",
}

// LookupOption finds value in registry.
func LookupOption(registry []Option, value string) (Option, bool) {
	for _, o := range registry {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// IsAddOn reports whether name is one of the fixed add-ons.
func IsAddOn(name string) bool {
	for _, a := range AddOns {
		if a == name {
			return true
		}
	}
	return false
}

// WizardOptions bundles every registry for the wizard UI.
type WizardOptions struct {
	ServiceTypes        []Option `json:"serviceTypes"`
	CleaningTypes       []Option `json:"cleaningTypes"`
	ReoccurrenceOptions []Option `json:"reoccurrenceOptions"`
	PetOptions          []Option `json:"petOptions"`
	LastCleaningOptions []Option `json:"lastCleaningOptions"`
	States              []string `json:"states"`
	Counties            []string `json:"counties"`
	AddOns              []string `json:"addOns"`
	AddOnUnitPrice      float64  `json:"addOnUnitPrice"`
}

// GetWizardOptions returns copies of the registries so callers cannot
// mutate the shared configuration.
func GetWizardOptions() WizardOptions {
	return WizardOptions{
		ServiceTypes:        append([]Option(nil), ServiceTypes...),
		CleaningTypes:       append([]Option(nil), CleaningTypes...),
		ReoccurrenceOptions: append([]Option(nil), ReoccurrenceOptions...),
		PetOptions:          append([]Option(nil), PetOptions...),
		LastCleaningOptions: append([]Option(nil), LastCleaningOptions...),
		States:              append([]string(nil), States...),
		Counties:            append([]string(nil), Counties...),
		AddOns:              append([]string(nil), AddOns...),
		AddOnUnitPrice:      AddOnUnitPrice,
	}
}
