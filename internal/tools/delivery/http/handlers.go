package http

import (
	"github.com/gin-gonic/gin"

	"smartcars-insurance/internal/rating"
	"smartcars-insurance/pkg/response"
)

// GetInsuranceRequest godoc
// @Summary     Look up an insurance request
// @Description Finds an insurance request by id or email.
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body getInsuranceRequestReq true "Lookup key"
// @Success     200 {object} model.InsuranceRequest
// @Failure     404 {object} response.ErrResp
// @Router      /tools/get_insurance_request [POST]
func (h *handler) GetInsuranceRequest(c *gin.Context) {
	var req getInsuranceRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	found, err := h.store.InsuranceRequest(req.EmailOrID)
	if err != nil {
		response.NotFound(c, "Insurance request not found")
		return
	}
	response.OK(c, found)
}

// GetDriverProfile godoc
// @Summary     Look up a driver profile
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body getDriverProfileReq true "Lookup key"
// @Success     200 {object} model.DriverProfile
// @Failure     404 {object} response.ErrResp
// @Router      /tools/get_driver_profile [POST]
func (h *handler) GetDriverProfile(c *gin.Context) {
	var req getDriverProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	profile, err := h.store.DriverProfile(req.NationalID)
	if err != nil {
		response.NotFound(c, "Driver profile not found")
		return
	}
	response.OK(c, profile)
}

// GetCarInfo godoc
// @Summary     Look up a vehicle by plate
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body getCarInfoReq true "Lookup key"
// @Success     200 {object} model.CarInfo
// @Failure     404 {object} response.ErrResp
// @Router      /tools/get_car_info [POST]
func (h *handler) GetCarInfo(c *gin.Context) {
	var req getCarInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	car, err := h.store.CarInfo(req.Plate)
	if err != nil {
		response.NotFound(c, "Car not found")
		return
	}
	response.OK(c, car)
}

// GetCarModelPrice godoc
// @Summary     Look up a model list price
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body getCarModelPriceReq true "Lookup key"
// @Success     200 {object} model.ModelPrice
// @Failure     404 {object} response.ErrResp
// @Router      /tools/get_car_model_price [POST]
func (h *handler) GetCarModelPrice(c *gin.Context) {
	var req getCarModelPriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	price, err := h.store.ModelPrice(req.Model)
	if err != nil {
		response.NotFound(c, "Model price not found")
		return
	}
	response.OK(c, price)
}

// CalculateRisk godoc
// @Summary     Compute the driver risk factor
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body calculateRiskReq true "Driver facts"
// @Success     200 {object} calculateRiskResp
// @Router      /tools/calculate_risk [POST]
func (h *handler) CalculateRisk(c *gin.Context) {
	var req calculateRiskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	response.OK(c, calculateRiskResp{Risk: rating.RiskFactor(req.Age, req.InfractionsCount)})
}

// CalculateVehicleFactor godoc
// @Summary     Compute the vehicle factor
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body calculateVehicleFactorReq true "Vehicle facts"
// @Success     200 {object} calculateVehicleFactorResp
// @Router      /tools/calculate_vehicle_factor [POST]
func (h *handler) CalculateVehicleFactor(c *gin.Context) {
	var req calculateVehicleFactorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}
	response.OK(c, calculateVehicleFactorResp{VehicleFactor: rating.VehicleFactor(req.Year, req.Price)})
}

// CalculatePremium godoc
// @Summary     Compute the premium for a plan
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body calculatePremiumReq true "Factors and plan"
// @Success     200 {object} rating.Quote
// @Failure     400 {object} response.ErrResp
// @Router      /tools/calculate_insurance_premium [POST]
func (h *handler) CalculatePremium(c *gin.Context) {
	ctx := c.Request.Context()

	var req calculatePremiumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	quote, err := rating.Premium(req.Risk, req.VehicleFactor, req.Plan)
	if err != nil {
		// The plan set is closed; an unknown plan is a caller bug.
		h.l.Errorf(ctx, "CalculatePremium: %v", err)
		response.BadRequest(c, "unknown plan")
		return
	}
	response.OK(c, quote)
}
