package usecase

import (
	"context"
	"errors"
	"fmt"

	"smartcars-insurance/internal/chat"
	"smartcars-insurance/internal/model"
	"smartcars-insurance/internal/rating"
	toolsClient "smartcars-insurance/internal/tools/client"
)

// premiumPlan is the tier quoted by the premium pipeline. Fixed: plan
// selection is not exposed to the user.
const premiumPlan = model.PlanAdvanced

// premiumByRequestID quotes a premium for a request id. A missing
// request becomes the fixed apology naming the identifier lookup.
func (uc *implUseCase) premiumByRequestID(ctx context.Context, requestID string) (string, error) {
	req, err := uc.tools.GetInsuranceRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, toolsClient.ErrNotFound) {
			return chat.MsgNoRequestByID, nil
		}
		return "", fmt.Errorf("get_insurance_request: %w", err)
	}
	return uc.premiumForRequest(ctx, req)
}

// premiumByEmail quotes a premium for a customer email.
func (uc *implUseCase) premiumByEmail(ctx context.Context, email string) (string, error) {
	req, err := uc.tools.GetInsuranceRequest(ctx, email)
	if err != nil {
		if errors.Is(err, toolsClient.ErrNotFound) {
			return chat.MsgNoRequestByEmail, nil
		}
		return "", fmt.Errorf("get_insurance_request: %w", err)
	}
	return uc.premiumForRequest(ctx, req)
}

// vehicleFactorByRequestID answers only the vehicle factor for a request.
func (uc *implUseCase) vehicleFactorByRequestID(ctx context.Context, requestID string) (string, error) {
	req, err := uc.tools.GetInsuranceRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, toolsClient.ErrNotFound) {
			return chat.MsgNoRequestByID, nil
		}
		return "", fmt.Errorf("get_insurance_request: %w", err)
	}

	carInfo, err := uc.tools.GetCarInfo(ctx, req.Plate)
	if err != nil {
		return "", fmt.Errorf("get_car_info: %w", err)
	}
	modelPrice, err := uc.tools.GetCarModelPrice(ctx, carInfo.Model)
	if err != nil {
		return "", fmt.Errorf("get_car_model_price: %w", err)
	}

	vehicleFactor, err := uc.tools.CalculateVehicleFactor(ctx, carInfo.Year, modelPrice.Price)
	if err != nil {
		return "", fmt.Errorf("calculate_vehicle_factor: %w", err)
	}

	return fmt.Sprintf(chat.FmtVehicleFactorAnswer, requestID, vehicleFactor), nil
}

// premiumForRequest runs the shared pipeline: dependent lookups in
// order, eligibility gating, then the premium chain. Secondary lookup
// keys come from the already-validated request record, so their misses
// propagate as internal failures rather than apologies.
func (uc *implUseCase) premiumForRequest(ctx context.Context, req model.InsuranceRequest) (string, error) {
	driver, err := uc.tools.GetDriverProfile(ctx, req.NationalID)
	if err != nil {
		return "", fmt.Errorf("get_driver_profile: %w", err)
	}
	carInfo, err := uc.tools.GetCarInfo(ctx, req.Plate)
	if err != nil {
		return "", fmt.Errorf("get_car_info: %w", err)
	}
	modelPrice, err := uc.tools.GetCarModelPrice(ctx, carInfo.Model)
	if err != nil {
		return "", fmt.Errorf("get_car_model_price: %w", err)
	}

	age, err := rating.AgeAt(driver.Birthdate, uc.now())
	if err != nil {
		return "", fmt.Errorf("age from birthdate: %w", err)
	}

	// A rejection is the answer, not an error.
	if rejection, ok := rating.ValidateEligibility(age, driver, carInfo, modelPrice); !ok {
		uc.l.Infof(ctx, "chat.premiumForRequest: request %s rejected: %s", req.ID, rejection)
		return rejection, nil
	}

	risk, err := uc.tools.CalculateRisk(ctx, age, driver.InfractionsCount)
	if err != nil {
		return "", fmt.Errorf("calculate_risk: %w", err)
	}
	vehicleFactor, err := uc.tools.CalculateVehicleFactor(ctx, carInfo.Year, modelPrice.Price)
	if err != nil {
		return "", fmt.Errorf("calculate_vehicle_factor: %w", err)
	}
	quote, err := uc.tools.CalculatePremium(ctx, risk, vehicleFactor, premiumPlan)
	if err != nil {
		return "", fmt.Errorf("calculate_insurance_premium: %w", err)
	}

	return fmt.Sprintf(chat.FmtPremiumAnswer, quote.RawPremium, quote.Premium), nil
}
