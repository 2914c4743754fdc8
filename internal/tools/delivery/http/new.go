package http

import (
	"github.com/gin-gonic/gin"

	"smartcars-insurance/internal/store"
	"smartcars-insurance/pkg/log"
)

// Handler exposes the tool endpoints consumed by the orchestrator.
type Handler interface {
	GetInsuranceRequest(c *gin.Context)
	GetDriverProfile(c *gin.Context)
	GetCarInfo(c *gin.Context)
	GetCarModelPrice(c *gin.Context)
	CalculateRisk(c *gin.Context)
	CalculateVehicleFactor(c *gin.Context)
	CalculatePremium(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store *store.Store
}

// New creates the tool-service HTTP handler.
func New(l log.Logger, s *store.Store) *handler {
	return &handler{
		l:     l,
		store: s,
	}
}
