package rating

import (
	"fmt"
	"time"

	"smartcars-insurance/internal/model"
)

// BirthdateLayout is the date format used by the driver profile dataset.
const BirthdateLayout = "2006-01-02"

// Eligibility bounds.
const (
	MinAge          = 20
	MaxAge          = 80
	MinVehicleYear  = 1980
	MinVehiclePrice = 50000
	MaxInfractions  = 10
)

// Rejection messages. These are user-facing answers, not internal errors,
// so the wording is part of the contract.
const (
	MsgRejectedAge         = "Lo siento pero este cliente no cumple el rango de edad permitido (20-80 años), no podemos venderle el seguro."
	MsgRejectedVehicleYear = "Lo siento, este vehículo es anterior a 1980, no podemos asegurarlo."
	MsgRejectedLowPrice    = "Lo siento, el valor del vehículo es inferior a 50 000 smartcars, no podemos asegurarlo."
	MsgRejectedInfractions = "Este cliente tiene más de 10 infracciones, no podemos venderle el seguro."
)

// MsgRejectedNotOwner builds the ownership rejection, naming the plate.
func MsgRejectedNotOwner(plate string) string {
	return fmt.Sprintf("Lo siento pero este cliente no es dueño del vehículo de matrícula %s.", plate)
}

// AgeAt computes whole years between birthdate and now, decremented by one
// when the birthday has not yet occurred in now's year.
func AgeAt(birthdate string, now time.Time) (int, error) {
	birth, err := time.Parse(BirthdateLayout, birthdate)
	if err != nil {
		return 0, fmt.Errorf("invalid birthdate %q: %w", birthdate, err)
	}

	age := now.Year() - birth.Year()
	monthDiff := int(now.Month()) - int(birth.Month())
	if monthDiff < 0 || (monthDiff == 0 && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// ValidateEligibility runs the business rules in their fixed order and
// returns the rejection message of the first failing rule. The order is
// user-visible (first match wins), so it must not be regrouped.
func ValidateEligibility(age int, driver model.DriverProfile, car model.CarInfo, price model.ModelPrice) (rejection string, ok bool) {
	if age < MinAge || age > MaxAge {
		return MsgRejectedAge, false
	}
	if car.Year < MinVehicleYear {
		return MsgRejectedVehicleYear, false
	}
	if price.Price < MinVehiclePrice {
		return MsgRejectedLowPrice, false
	}
	if driver.NationalID != car.OwnerNationalID {
		return MsgRejectedNotOwner(car.Plate), false
	}
	if driver.InfractionsCount > MaxInfractions {
		return MsgRejectedInfractions, false
	}
	return "", true
}
