package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/dto"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/httpresp"
	"github.com/BruksfildServices01/braider-booking/internal/middleware"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/braider-booking/internal/usecase/booking"
)

type BookingHandler struct {
	list       *ucBooking.ListBookings
	get        *ucBooking.GetBooking
	transition *ucBooking.Transition
}

func NewBookingHandler(
	list *ucBooking.ListBookings,
	get *ucBooking.GetBooking,
	transition *ucBooking.Transition,
) *BookingHandler {
	return &BookingHandler{list: list, get: get, transition: transition}
}

type TransitionRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(
		c.Request.Context(),
		middleware.ProviderID(c),
		models.BookingStatus(c.Query("status")),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Bookings(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), middleware.ProviderID(c), bookingID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Booking(b))
}

func (h *BookingHandler) Transition(c *gin.Context) {
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, err := h.transition.Execute(c.Request.Context(), ucBooking.TransitionInput{
		BookingID: bookingID,
		Action:    domain.Action(req.Action),
		Actor:     ucBooking.ProviderActor(middleware.ProviderID(c)),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.BookingStatus(b))
}
