package store

import "errors"

var (
	ErrInsuranceRequestNotFound = errors.New("insurance request not found")
	ErrDriverProfileNotFound    = errors.New("driver profile not found")
	ErrCarInfoNotFound          = errors.New("car not found")
	ErrModelPriceNotFound       = errors.New("model price not found")
)
