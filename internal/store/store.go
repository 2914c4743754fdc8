// Package store holds the reference datasets backing the tool service.
// All four tables are loaded once at start-up and never mutated, so the
// store is safe for concurrent reads without locking.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"smartcars-insurance/internal/model"
)

// Dataset file names, as shipped in the data directory.
const (
	insuranceRequestsFile = "insurance_requests.json"
	driverProfilesFile    = "driver_profiles.json"
	carInfoFile           = "car_info.json"
	modelPricesFile       = "model_prices.json"
)

// Store is the read-only reference data store.
type Store struct {
	insuranceRequests []model.InsuranceRequest
	driverProfiles    []model.DriverProfile
	carInfos          []model.CarInfo
	modelPrices       []model.ModelPrice
}

// Load reads the four datasets from dir. Missing or malformed files fail
// start-up; there is no partial load.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := loadJSONFile(filepath.Join(dir, insuranceRequestsFile), &s.insuranceRequests); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, driverProfilesFile), &s.driverProfiles); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, carInfoFile), &s.carInfos); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, modelPricesFile), &s.modelPrices); err != nil {
		return nil, err
	}

	return s, nil
}

func loadJSONFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return nil
}

// InsuranceRequest finds a request by id or email. Scans in file order,
// first match wins.
func (s *Store) InsuranceRequest(emailOrID string) (model.InsuranceRequest, error) {
	for _, r := range s.insuranceRequests {
		if r.ID == emailOrID || r.Email == emailOrID {
			return r, nil
		}
	}
	return model.InsuranceRequest{}, ErrInsuranceRequestNotFound
}

// DriverProfile finds a profile by national id.
func (s *Store) DriverProfile(nationalID string) (model.DriverProfile, error) {
	for _, d := range s.driverProfiles {
		if d.NationalID == nationalID {
			return d, nil
		}
	}
	return model.DriverProfile{}, ErrDriverProfileNotFound
}

// CarInfo finds a vehicle by plate.
func (s *Store) CarInfo(plate string) (model.CarInfo, error) {
	for _, c := range s.carInfos {
		if c.Plate == plate {
			return c, nil
		}
	}
	return model.CarInfo{}, ErrCarInfoNotFound
}

// ModelPrice finds the list price for a vehicle model.
func (s *Store) ModelPrice(modelName string) (model.ModelPrice, error) {
	for _, m := range s.modelPrices {
		if m.Model == modelName {
			return m, nil
		}
	}
	return model.ModelPrice{}, ErrModelPriceNotFound
}
