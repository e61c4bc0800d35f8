// README: Location handlers resolving free text to a road and distance band.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sensei/internal/modules/location"
	"sensei/internal/types"
)

type LocationHandler struct {
	index *location.Index
}

func NewLocationHandler(idx *location.Index) *LocationHandler {
	return &LocationHandler{index: idx}
}

func (h *LocationHandler) Resolve(c *gin.Context) {
	loc := c.Query("location")
	if loc == "" {
		writeError(c, http.StatusBadRequest, "location is required")
		return
	}
	ctx := h.index.Resolve(loc, types.NormalizeTimeOfDay(c.Query("time_of_day")))
	writeJSON(c, http.StatusOK, presentResolve(ctx))
}
