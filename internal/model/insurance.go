package model

// InsuranceRequest is a pending request for an auto-insurance quote.
// ID and Email are alternate unique keys into the reference store.
type InsuranceRequest struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	NationalID string `json:"nationalId"`
	Plate      string `json:"plate"`
}

// DriverProfile holds the driver facts used by the business rules.
type DriverProfile struct {
	NationalID       string `json:"nationalId"`
	Birthdate        string `json:"birthdate"`
	InfractionsCount int    `json:"infractionsCount"`
}

// CarInfo describes the insured vehicle.
type CarInfo struct {
	Plate           string `json:"plate"`
	Year            int    `json:"year"`
	Model           string `json:"model"`
	OwnerNationalID string `json:"ownerNationalId"`
}

// ModelPrice is the list price for a vehicle model, in smartcars.
type ModelPrice struct {
	Model string  `json:"model"`
	Price float64 `json:"price"`
}
