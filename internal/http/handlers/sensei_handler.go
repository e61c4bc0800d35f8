// README: Diagnose handler; the full match-and-price flow.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sensei/internal/service"
)

type SenseiHandler struct {
	sensei *service.Sensei
}

func NewSenseiHandler(svc *service.Sensei) *SenseiHandler {
	return &SenseiHandler{sensei: svc}
}

type diagnoseReq struct {
	ProblemDescription string      `json:"problem_description"`
	CarMake            string      `json:"car_make"`
	CarModel           string      `json:"car_model"`
	Year               looseString `json:"year"`
	Mileage            looseString `json:"mileage"`
	Location           *string     `json:"location"`
	TimeOfDay          string      `json:"time_of_day"`
	Timestamp          string      `json:"timestamp"`
}

func (h *SenseiHandler) Diagnose(c *gin.Context) {
	var req diagnoseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.sensei.Diagnose(service.DiagnoseRequest{
		ProblemDescription: req.ProblemDescription,
		CarMake:            req.CarMake,
		CarModel:           req.CarModel,
		Year:               string(req.Year),
		Mileage:            string(req.Mileage),
		Location:           req.Location,
		TimeOfDay:          req.TimeOfDay,
		Timestamp:          req.Timestamp,
	})
	if err != nil {
		writeSenseiError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, presentResult(res))
}
