package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petiair/tickets/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	FlightNumber   string `json:"flight_number"`
	Destination    string `json:"destination"`
	Category       string `json:"category"`
	BaseFare       int64  `json:"base_fare"`
	EffectivePrice int64  `json:"effective_price"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:number", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	catalog, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]flightResponse, 0, len(catalog))
	for _, f := range catalog {
		out = append(out, flightResponse{
			FlightNumber:   f.FlightNumber,
			Destination:    f.Destination,
			Category:       string(f.Category),
			BaseFare:       f.BaseFare,
			EffectivePrice: f.EffectivePrice(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, ok := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	c.JSON(http.StatusOK, flightResponse{
		FlightNumber:   flight.FlightNumber,
		Destination:    flight.Destination,
		Category:       string(flight.Category),
		BaseFare:       flight.BaseFare,
		EffectivePrice: flight.EffectivePrice(),
	})
}
