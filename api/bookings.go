package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID   string `json:"flight_id"`
	SeatID     string `json:"seat_id"`
	Passengers int    `json:"passengers"`
}

type bookingResponse struct {
	ID         string               `json:"id"`
	FlightID   string               `json:"flight_id"`
	SeatID     string               `json:"seat_id"`
	Passengers int                  `json:"passengers"`
	Status     string               `json:"status"`
	Fare       domain.FareBreakdown `json:"fare"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/:id/complete", h.complete)
	router.POST("/:id/cancel", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:   req.FlightID,
		SeatID:     req.SeatID,
		Passengers: req.Passengers,
	})
	if err != nil {
		c.JSON(statusForBookingErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	tab, ok := domain.ParseListTab(c.Query("tab"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab"})
		return
	}
	bookings, err := h.service.ListBookings(c.Request.Context(), tab)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForBookingErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) complete(c *gin.Context) {
	updated, err := h.service.CompleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForBookingErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	updated, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForBookingErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		FlightID:   b.FlightID,
		SeatID:     b.SeatID,
		Passengers: b.PassengerCount,
		Status:     string(b.Status),
		Fare:       b.Fare,
	}
}

func statusForBookingErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrInvalidSeat),
		errors.Is(err, domain.ErrNoSeatSelected),
		errors.Is(err, domain.ErrSeatRequired),
		errors.Is(err, domain.ErrInvalidPassengers),
		errors.Is(err, domain.ErrStatusFinal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
