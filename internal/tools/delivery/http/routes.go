package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the tool endpoints under /tools.
func MapRoutes(r gin.IRouter, h Handler) {
	tools := r.Group("/tools")
	{
		tools.POST("/get_insurance_request", h.GetInsuranceRequest)
		tools.POST("/get_driver_profile", h.GetDriverProfile)
		tools.POST("/get_car_info", h.GetCarInfo)
		tools.POST("/get_car_model_price", h.GetCarModelPrice)
		tools.POST("/calculate_risk", h.CalculateRisk)
		tools.POST("/calculate_vehicle_factor", h.CalculateVehicleFactor)
		tools.POST("/calculate_insurance_premium", h.CalculatePremium)
	}
}
