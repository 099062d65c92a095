package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service airport.AirportUseCase
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewFlightHandler(service airport.AirportUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:code", h.get)
	router.DELETE("/:code", h.remove)
	router.PUT("/:code/status", h.updateStatus)
	router.GET("/:code/manifest", h.manifest)
}

func (h *FlightHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.FlightSummaries(c.Query("destination")))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req airport.FlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	flight, err := h.service.ScheduleFlight(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.FlightSummary(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) remove(c *gin.Context) {
	code := c.Param("code")
	if !h.service.RemoveFlight(c.Request.Context(), code) {
		writeError(c, domain.NotFoundError{Entity: "flight", Key: code})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	status, err := domain.ParseFlightStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	code := c.Param("code")
	if err := h.service.SetFlightStatus(c.Request.Context(), code, status); err != nil {
		writeError(c, err)
		return
	}

	flight, err := h.service.FlightSummary(code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) manifest(c *gin.Context) {
	manifest, err := h.service.Manifest(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, manifest)
}
