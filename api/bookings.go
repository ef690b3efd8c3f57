package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petiair/tickets/internal/domain"
	"github.com/petiair/tickets/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PassengerName string `json:"passenger_name"`
	FlightIndex   int    `json:"flight_index"`
	Date          string `json:"date"`
}

type bookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
	Date          string `json:"date"`
	Price         int64  `json:"price,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.service.Book(c.Request.Context(), booking.BookTicketInput{
		PassengerName: req.PassengerName,
		FlightIndex:   req.FlightIndex,
		Date:          req.Date,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := confirmation.Booking
	c.JSON(http.StatusCreated, bookingResponse{
		BookingID:     b.ID,
		PassengerName: b.PassengerName,
		FlightNumber:  b.FlightNumber,
		Date:          b.TravelDate.Format(domain.DateLayout),
		Price:         confirmation.Price,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings := h.service.Bookings(c.Request.Context())

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResponse{
			BookingID:     b.ID,
			PassengerName: b.PassengerName,
			FlightNumber:  b.FlightNumber,
			Date:          b.TravelDate.Format(domain.DateLayout),
		})
	}
	c.JSON(http.StatusOK, out)
}
