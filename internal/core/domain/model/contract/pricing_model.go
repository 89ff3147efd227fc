package contract

import (
	"fmt"

	"fleetadmin/internal/pkg/errs"
)

// PricingModel identifies how the agreed vehicle rate is applied over the
// rental period. Pricing computation itself happens outside this core; the
// model is carried on the contract for downstream billing.
type PricingModel int

const (
	// PricingUnknown represents an invalid or undefined pricing model.
	PricingUnknown PricingModel = iota

	// PricingDaily applies the agreed rate per calendar day.
	PricingDaily

	// PricingWeekly applies the agreed rate per started week.
	PricingWeekly

	// PricingMonthly applies the agreed rate per started month.
	PricingMonthly

	// PricingFixed applies the agreed rate once for the whole period.
	PricingFixed
)

func getPricingModelStrings() map[PricingModel]string {
	return map[PricingModel]string{
		PricingUnknown: "Unknown",
		PricingDaily:   "Daily",
		PricingWeekly:  "Weekly",
		PricingMonthly: "Monthly",
		PricingFixed:   "Fixed",
	}
}

func getValidPricingModelStrings() map[PricingModel]string {
	//nolint:exhaustive // PricingUnknown is intentionally excluded as it's invalid
	return map[PricingModel]string{
		PricingDaily:   "Daily",
		PricingWeekly:  "Weekly",
		PricingMonthly: "Monthly",
		PricingFixed:   "Fixed",
	}
}

// Validate checks if the PricingModel value is valid.
func (p PricingModel) Validate() error {
	if _, ok := getValidPricingModelStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pricingModel",
			fmt.Errorf("%d is not a valid pricing model", p))
	}
	return nil
}

// String returns the human-readable name of the pricing model.
func (p PricingModel) String() string {
	if str, ok := getPricingModelStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// ParsePricingModel converts a pricing model name into a PricingModel value.
func ParsePricingModel(name string) (PricingModel, error) {
	for model, str := range getValidPricingModelStrings() {
		if str == name {
			return model, nil
		}
	}
	return PricingUnknown, errs.NewValueIsInvalidErrorWithCause("pricingModel",
		fmt.Errorf("%q is not a valid pricing model", name))
}
