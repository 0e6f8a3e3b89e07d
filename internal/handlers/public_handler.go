package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/dto"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/httpresp"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	ucAvailability "github.com/BruksfildServices01/braider-booking/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/braider-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/braider-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	getProvider   *ucCatalog.GetProvider
	listServices  *ucCatalog.ListServices
	listFreeSlots *ucAvailability.ListFreeSlots
	reserve       *ucBooking.Reserve
	transition    *ucBooking.Transition
}

func NewPublicHandler(
	getProvider *ucCatalog.GetProvider,
	listServices *ucCatalog.ListServices,
	listFreeSlots *ucAvailability.ListFreeSlots,
	reserve *ucBooking.Reserve,
	transition *ucBooking.Transition,
) *PublicHandler {
	return &PublicHandler{
		getProvider:   getProvider,
		listServices:  listServices,
		listFreeSlots: listFreeSlots,
		reserve:       reserve,
		transition:    transition,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReserveRequest struct {
	ProviderID      string `json:"provider_id" binding:"required"`
	ServiceID       string `json:"service_id" binding:"required"`
	SlotID          string `json:"slot_id" binding:"required"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	ClientAddress   string `json:"client_address"`
	AppointmentType string `json:"appointment_type" binding:"required"`
}

type ClientCancelRequest struct {
	ClientEmail string `json:"client_email" binding:"required"`
}

// ======================================================
// GET /api/public/providers/:providerID
// ======================================================

func (h *PublicHandler) Provider(c *gin.Context) {
	providerID, ok := uuidParam(c, "providerID")
	if !ok {
		return
	}

	p, err := h.getProvider.Execute(c.Request.Context(), providerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Provider(p))
}

// ======================================================
// GET /api/public/providers/:providerID/services
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	providerID, ok := uuidParam(c, "providerID")
	if !ok {
		return
	}

	services, err := h.listServices.Execute(c.Request.Context(), providerID, true)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Services(services))
}

// ======================================================
// GET /api/public/providers/:providerID/availability
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	providerID, ok := uuidParam(c, "providerID")
	if !ok {
		return
	}

	slots, err := h.listFreeSlots.Execute(c.Request.Context(), providerID, ucAvailability.RangeInput{
		Month: c.Query("month"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.FreeSlots(slots))
}

// ======================================================
// POST /api/public/bookings
// ======================================================

func (h *PublicHandler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	in := ucBooking.ReserveInput{
		Client: domain.ClientInfo{
			Name:    req.ClientName,
			Email:   req.ClientEmail,
			Phone:   req.ClientPhone,
			Address: req.ClientAddress,
		},
		AppointmentType: models.AppointmentType(req.AppointmentType),
	}

	var err error
	if in.ProviderID, err = parseUUID(req.ProviderID); err != nil {
		httperr.FromError(c, err)
		return
	}
	if in.ServiceID, err = parseUUID(req.ServiceID); err != nil {
		httperr.FromError(c, err)
		return
	}
	if in.SlotID, err = parseUUID(req.SlotID); err != nil {
		httperr.FromError(c, err)
		return
	}

	b, err := h.reserve.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Reservation(b))
}

// ======================================================
// POST /api/public/bookings/:id/cancel
// ======================================================

func (h *PublicHandler) CancelByClient(c *gin.Context) {
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ClientCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, err := h.transition.Execute(c.Request.Context(), ucBooking.TransitionInput{
		BookingID: bookingID,
		Action:    domain.ActionCancel,
		Actor:     ucBooking.ClientActor(req.ClientEmail),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.BookingStatus(b))
}
