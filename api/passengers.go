package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service airport.AirportUseCase
}

func NewPassengerHandler(service airport.AirportUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.remove)
}

func (h *PassengerHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.PassengerSummaries(c.Query("name")))
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req airport.PassengerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	passenger, err := h.service.RegisterPassenger(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.service.PassengerSummary(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) remove(c *gin.Context) {
	id := c.Param("id")
	if !h.service.RemovePassenger(c.Request.Context(), id) {
		writeError(c, domain.NotFoundError{Entity: "passenger", Key: id})
		return
	}
	c.Status(http.StatusNoContent)
}
