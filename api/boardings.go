package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/gin-gonic/gin"
)

type BoardingHandler struct {
	service airport.AirportUseCase
}

// boardingRequest names the passenger by id or, when id is empty, by a unique name.
type boardingRequest struct {
	PassengerID   string `json:"passenger_id"`
	PassengerName string `json:"passenger_name"`
	TicketClass   string `json:"ticket_class"`
}

type boardingResponse struct {
	FlightCode  string             `json:"flight_code"`
	TicketClass domain.TicketClass `json:"ticket_class"`
	Boarded     bool               `json:"boarded"`
}

func NewBoardingHandler(service airport.AirportUseCase) *BoardingHandler {
	return &BoardingHandler{service: service}
}

// Register mounts under the flights group so boardings live at /flights/:code/boardings.
func (h *BoardingHandler) Register(router *gin.RouterGroup) {
	router.POST("/:code/boardings", h.board)
}

func (h *BoardingHandler) board(c *gin.Context) {
	var req boardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if req.PassengerID == "" && req.PassengerName == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "passenger_id or passenger_name is required"})
		return
	}

	class := domain.TicketClassEconomy
	if req.TicketClass != "" {
		parsed, err := domain.ParseTicketClass(req.TicketClass)
		if err != nil {
			writeError(c, err)
			return
		}
		class = parsed
	}

	code := domain.NormalizeFlightCode(c.Param("code"))
	var (
		boarded bool
		err     error
	)
	if req.PassengerID != "" {
		boarded, err = h.service.BoardPassenger(c.Request.Context(), req.PassengerID, code, class)
	} else {
		boarded, err = h.service.BoardPassengerByName(c.Request.Context(), req.PassengerName, code, class)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardingResponse{FlightCode: code, TicketClass: class, Boarded: boarded})
}
