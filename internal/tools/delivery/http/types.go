package http

import "smartcars-insurance/internal/model"

type getInsuranceRequestReq struct {
	EmailOrID string `json:"emailOrId"`
}

type getDriverProfileReq struct {
	NationalID string `json:"nationalId"`
}

type getCarInfoReq struct {
	Plate string `json:"plate"`
}

type getCarModelPriceReq struct {
	Model string `json:"model"`
}

type calculateRiskReq struct {
	Age              int `json:"age"`
	InfractionsCount int `json:"infractionsCount"`
}

type calculateRiskResp struct {
	Risk float64 `json:"risk"`
}

type calculateVehicleFactorReq struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

type calculateVehicleFactorResp struct {
	VehicleFactor float64 `json:"vehicleFactor"`
}

type calculatePremiumReq struct {
	Risk          float64    `json:"risk"`
	VehicleFactor float64    `json:"vehicleFactor"`
	Plan          model.Plan `json:"plan"`
}
