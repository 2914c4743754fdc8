// Package rating implements the pure scoring engine: risk and vehicle
// factors, eligibility rules and the premium calculation. No I/O.
package rating

import (
	"fmt"
	"math"

	"smartcars-insurance/internal/model"
)

// Quote is a computed premium for a plan tier.
type Quote struct {
	RawPremium float64 `json:"rawPremium"`
	Premium    int     `json:"premium"`
}

// RiskFactor derives the driver risk multiplier from age and infractions.
// Age brackets: <25 → 1.5, 25..40 → 1.2, 41..65 → 1.0, >65 → 1.3.
func RiskFactor(age, infractionsCount int) float64 {
	ageFactor := 1.0
	switch {
	case age < 25:
		ageFactor = 1.5
	case age <= 40:
		ageFactor = 1.2
	case age <= 65:
		ageFactor = 1.0
	default:
		ageFactor = 1.3
	}

	return ageFactor + 0.1*float64(infractionsCount)
}

// VehicleFactor derives the vehicle multiplier from model year and price.
func VehicleFactor(year int, price float64) float64 {
	yearFactor := 1.0
	switch {
	case year >= 2020:
		yearFactor = 1.3
	case year >= 2010:
		yearFactor = 1.1
	case year >= 2000:
		yearFactor = 1.0
	default:
		yearFactor = 0.9
	}

	priceFactor := 1.0
	switch {
	case price >= 200000:
		priceFactor = 1.5
	case price >= 100000:
		priceFactor = 1.2
	}

	return yearFactor * priceFactor
}

// Premium combines risk, vehicle factor and the plan base price.
// An unknown plan is a caller bug: the plan set is closed.
func Premium(risk, vehicleFactor float64, plan model.Plan) (Quote, error) {
	base, ok := plan.BasePrice()
	if !ok {
		return Quote{}, fmt.Errorf("unknown plan %q", plan)
	}

	raw := base * risk * vehicleFactor
	return Quote{
		RawPremium: raw,
		Premium:    int(math.Round(raw)),
	}, nil
}
