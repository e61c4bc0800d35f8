// README: Direct price estimate lookups.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sensei/internal/modules/catalog"
	"sensei/internal/modules/pricing"
	"sensei/internal/service"
	"sensei/internal/types"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

// Estimate prices one service. zone defaults to location, car_make to the
// default make.
func (h *PricingHandler) Estimate(c *gin.Context) {
	key := strings.TrimSpace(c.Query("service"))
	if key == "" {
		writeError(c, http.StatusBadRequest, "service is required")
		return
	}
	loc := strings.TrimSpace(c.Query("location"))
	zone := c.DefaultQuery("zone", loc)
	carMake := c.DefaultQuery("car_make", service.DefaultCarMake)

	est, err := h.pricing.Estimate(pricing.Request{
		Service:   catalog.ServiceKey(key),
		Zone:      zone,
		CarMake:   carMake,
		TimeOfDay: types.NormalizeTimeOfDay(c.Query("time_of_day")),
		Location:  loc,
	})
	if err != nil {
		writeSenseiError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"service": key, "estimate": presentEstimate(est)})
}
