// README: Health check with a summary of the loaded catalog.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sensei/internal/modules/catalog"
)

type HealthHandler struct {
	catalog *catalog.Catalog
	version string
	now     func() time.Time
}

func NewHealthHandler(c *catalog.Catalog, version string) *HealthHandler {
	return &HealthHandler{catalog: c, version: version, now: time.Now}
}

type healthFeatures struct {
	DiagnosticTemplates int  `json:"diagnostic_templates"`
	RoadNetwork         int  `json:"road_network"`
	Services            int  `json:"services"`
	CoverageRadiusKm    int  `json:"coverage_radius_km"`
	MobileRadiusKm      int  `json:"mobile_mechanic_radius_km"`
	PickAndDropRadiusKm int  `json:"pick_and_drop_radius_km"`
	TrafficAware        bool `json:"traffic_aware"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	roads := h.catalog.Roads()
	names := make([]string, len(roads))
	for i, r := range roads {
		names[i] = r.Name
	}
	cov := h.catalog.Coverage()

	writeJSON(c, http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sensei",
		"version": h.version,
		"features": healthFeatures{
			DiagnosticTemplates: len(h.catalog.Templates()),
			RoadNetwork:         len(roads),
			Services:            len(h.catalog.Services()),
			CoverageRadiusKm:    cov.MaxDistanceKm,
			MobileRadiusKm:      cov.MobileMechanicMaxKm,
			PickAndDropRadiusKm: cov.PickAndDropMaxKm,
			TrafficAware:        true,
		},
		"roads_covered": names,
		"timestamp":     h.now().Format(time.RFC3339),
	})
}
