package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/braider-booking/internal/dto"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/httpresp"
	"github.com/BruksfildServices01/braider-booking/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/braider-booking/internal/usecase/availability"
)

type SlotHandler struct {
	create *ucAvailability.CreateSlot
	list   *ucAvailability.ListSlots
	remove *ucAvailability.DeleteSlot
}

func NewSlotHandler(
	create *ucAvailability.CreateSlot,
	list *ucAvailability.ListSlots,
	remove *ucAvailability.DeleteSlot,
) *SlotHandler {
	return &SlotHandler{create: create, list: list, remove: remove}
}

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	slot, err := h.create.Execute(c.Request.Context(), ucAvailability.CreateSlotInput{
		ProviderID: middleware.ProviderID(c),
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Slot(slot))
}

func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.list.Execute(c.Request.Context(), middleware.ProviderID(c), ucAvailability.RangeInput{
		Month: c.Query("month"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Slots(slots))
}

func (h *SlotHandler) Delete(c *gin.Context) {
	slotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ProviderID(c), slotID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
